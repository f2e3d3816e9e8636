package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/prefabs"
)

// DefaultBossPolicy is the script gating boss abilities.
const DefaultBossPolicy = "boss_policy.tengo"

const bossPolicyDispatchScript = `
__result = allow(__boss, __ability, __health_ratio)
`

// BossPolicy runs a tengo script that decides, per use, whether a boss may
// trigger an ability. The script defines
//
//	allow := func(boss, ability, health_ratio) { ... }
//
// where boss and ability are snake_case names and health_ratio is in [0,1].
type BossPolicy struct {
	name     string
	compiled *tengo.Compiled
}

// LoadBossPolicy compiles a script from prefabs/scripts, preferring a copy on
// disk.
func LoadBossPolicy(name string) (*BossPolicy, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultBossPolicy
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("boss policy: load %s: %w", name, err)
	}
	p, err := NewBossPolicy(src)
	if err != nil {
		return nil, fmt.Errorf("boss policy: %s: %w", name, err)
	}
	p.name = name
	return p, nil
}

func NewBossPolicy(src []byte) (*BossPolicy, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + bossPolicyDispatchScript))
	_ = script.Add("__boss", "")
	_ = script.Add("__ability", "")
	_ = script.Add("__health_ratio", 0.0)
	_ = script.Add("__result", true)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return &BossPolicy{compiled: compiled}, nil
}

// Allow asks the script about one ability use. A nil policy allows
// everything. On a script error, including a fault that panics inside the
// VM, the use is allowed and the error returned.
func (p *BossPolicy) Allow(kind component.BossKind, ability component.AbilityKind, healthRatio float64) (allowed bool, err error) {
	if p == nil || p.compiled == nil {
		return true, nil
	}
	defer func() {
		if r := recover(); r != nil {
			allowed, err = true, fmt.Errorf("boss policy: run: %v", r)
		}
	}()
	if err := p.compiled.Set("__boss", kind.String()); err != nil {
		return true, err
	}
	if err := p.compiled.Set("__ability", ability.String()); err != nil {
		return true, err
	}
	if err := p.compiled.Set("__health_ratio", healthRatio); err != nil {
		return true, err
	}
	if err := p.compiled.Run(); err != nil {
		return true, err
	}
	return p.compiled.Get("__result").Bool(), nil
}

func (p *BossPolicy) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}
