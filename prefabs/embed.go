package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load returns a tuning file. A copy under ./prefabs wins over the embedded
// one so that edited tables take effect without a rebuild.
func Load(name string) ([]byte, error) {
	return readPrefab(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript returns a policy script from prefabs/scripts, disk first.
func LoadScript(name string) ([]byte, error) {
	return readPrefab(ScriptsFS, cleanScriptPath(name))
}

func readPrefab(embedded embed.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(clean)
}

func cleanPrefabPath(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
}

// cleanScriptPath accepts a bare file name or any path ending in
// scripts/<name> and returns the embedded path.
func cleanScriptPath(name string) string {
	if name == "" {
		return ""
	}
	return "scripts/" + path.Base(filepath.ToSlash(name))
}
