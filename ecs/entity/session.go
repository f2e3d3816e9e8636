package entity

import (
	"fmt"

	"github.com/milk9111/starblaster/combat"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/prefabs"
)

// NewSession creates the world's run-state singleton.
func NewSession(w *ecs.World, tuning *prefabs.Tuning, now float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SessionComponent.Kind(), &component.Session{
		Now:       now,
		StartedAt: now,
		Width:     tuning.Arena.Width,
		Height:    tuning.Arena.Height,
		Combo:     combat.NewCombo(),
	}); err != nil {
		return 0, fmt.Errorf("session: add session: %w", err)
	}
	return e, nil
}
