package entity

import (
	"fmt"

	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/prefabs"
)

func NewPowerUp(w *ecs.World, tuning *prefabs.Tuning, kind component.PowerUpKind, x, y float64) (ecs.Entity, error) {
	table := tuning.PowerUps
	key := "powerup." + kind.String()

	e, err := spawnBox(w, x, y, table.Size, table.Size, key, "")
	if err != nil {
		return 0, fmt.Errorf("powerup: %w", err)
	}
	if err := ecs.Add(w, e, component.PowerUpComponent.Kind(), &component.PowerUp{
		Kind:      kind,
		Duration:  tuning.PowerUp(kind).Duration,
		FallSpeed: table.FallSpeed,
	}); err != nil {
		return 0, fmt.Errorf("powerup: add powerup: %w", err)
	}
	announceSpawn(w, e, key)
	return e, nil
}
