package entity

import (
	"fmt"

	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/prefabs"
)

// NewPlayer places the chosen archetype at the bottom center of the arena.
func NewPlayer(w *ecs.World, tuning *prefabs.Tuning, kind component.PlayerKind, now float64) (ecs.Entity, error) {
	arena := tuning.Arena
	stats := tuning.Archetype(kind)

	e, err := spawnBox(w, arena.Width/2, arena.Height-arena.PlayerBottom, arena.Player.Width, arena.Player.Height, "player."+kind.String(), stats.Name)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), component.NewPlayer(kind, stats, now)); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	return e, nil
}

// NewSidekick creates an orbiting helper owned by the player.
func NewSidekick(w *ecs.World, tuning *prefabs.Tuning, owner ecs.Entity, ownerX, ownerY float64) (ecs.Entity, error) {
	spec := tuning.Arena.Sidekick
	e, err := spawnBox(w, ownerX+spec.OffsetX+spec.Radius, ownerY+spec.OffsetY, spec.Width, spec.Height, "sidekick", "")
	if err != nil {
		return 0, fmt.Errorf("sidekick: %w", err)
	}
	if err := ecs.Add(w, e, component.SidekickComponent.Kind(), &component.Sidekick{
		Owner:        uint64(owner),
		AngularSpeed: spec.AngularSpeed,
		OffsetX:      spec.OffsetX,
		OffsetY:      spec.OffsetY,
		Radius:       spec.Radius,
	}); err != nil {
		return 0, fmt.Errorf("sidekick: add sidekick: %w", err)
	}
	announceSpawn(w, e, "sidekick")
	return e, nil
}
