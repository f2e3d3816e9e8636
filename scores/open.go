package scores

import (
	"fmt"
	"path/filepath"
)

// AppName names the gdata directory and the default sqlite file.
const AppName = "starblaster"

// Open picks a backend by name: "gdata" (default) or "sqlite". dbPath
// overrides the sqlite file location.
func Open(backend, dbPath string) (Store, error) {
	switch backend {
	case "", "gdata":
		return OpenGData(AppName)
	case "sqlite":
		if dbPath == "" {
			dbPath = filepath.Join(".", AppName+".db")
		}
		return OpenSQLite(dbPath)
	default:
		return nil, fmt.Errorf("scores: unknown backend %q", backend)
	}
}
