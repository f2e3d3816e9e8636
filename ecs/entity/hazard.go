package entity

import (
	"fmt"

	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/prefabs"
)

// NewLaser creates a beam hanging from the source's bottom edge down to
// floorY. The hazard system keeps it attached to the source.
func NewLaser(w *ecs.World, spec prefabs.AbilitySpec, source ecs.Entity, x, top, floorY, now float64) (ecs.Entity, error) {
	height := floorY - top
	if height < 0 {
		height = 0
	}
	e, err := spawnBox(w, x, top+height/2, spec.Width, height, "hazard.laser", "")
	if err != nil {
		return 0, fmt.Errorf("laser: %w", err)
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
		Kind:         component.HazardLaser,
		Source:       uint64(source),
		ExpiresAt:    now + spec.Duration,
		Damage:       spec.Damage,
		TickInterval: spec.Tick,
		NextTickAt:   now,
	}); err != nil {
		return 0, fmt.Errorf("laser: add hazard: %w", err)
	}
	return e, nil
}

// NewBlackHole creates a pulling field centered on (x, y).
func NewBlackHole(w *ecs.World, spec prefabs.AbilitySpec, source ecs.Entity, x, y, now float64) (ecs.Entity, error) {
	e, err := spawnBox(w, x, y, spec.Radius*2, spec.Radius*2, "hazard.black_hole", "")
	if err != nil {
		return 0, fmt.Errorf("black hole: %w", err)
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
		Kind:      component.HazardBlackHole,
		Source:    uint64(source),
		ExpiresAt: now + spec.Duration,
		Radius:    spec.Radius,
		Pull:      spec.Pull,
	}); err != nil {
		return 0, fmt.Errorf("black hole: add hazard: %w", err)
	}
	return e, nil
}
