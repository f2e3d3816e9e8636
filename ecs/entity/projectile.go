package entity

import (
	"fmt"

	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/prefabs"
)

// ShotOptions are the per-shot flags a player projectile carries.
type ShotOptions struct {
	Angle    float64
	Damage   float64
	Piercing bool
	Splash   bool
}

// NewPlayerShot fires a player projectile from (x, y).
func NewPlayerShot(w *ecs.World, tuning *prefabs.Tuning, x, y float64, opts ShotOptions) (ecs.Entity, error) {
	shots := tuning.Arena.Shots
	p := &component.Projectile{
		Damage:   opts.Damage,
		Speed:    shots.Speed,
		Angle:    opts.Angle,
		Piercing: opts.Piercing,
		Splash:   opts.Splash,
	}
	return newProjectile(w, x, y, shots.Width, shots.Height, p)
}

// NewEnemyShot fires a hostile projectile straight down from (x, y).
func NewEnemyShot(w *ecs.World, tuning *prefabs.Tuning, x, y, damage float64) (ecs.Entity, error) {
	shots := tuning.Arena.EnemyShots
	p := &component.Projectile{
		Damage:  damage,
		Speed:   shots.Speed,
		Hostile: true,
	}
	return newProjectile(w, x, y, shots.Width, shots.Height, p)
}

// NewMissile launches a homing missile that lives until now+lifetime.
func NewMissile(w *ecs.World, spec prefabs.AbilitySpec, x, y, now float64) (ecs.Entity, error) {
	p := &component.Projectile{
		Damage:  spec.Damage,
		Speed:   spec.Speed,
		Hostile: true,
		Homing:  true,
	}
	if spec.Lifetime > 0 {
		p.ExpiresAt = now + spec.Lifetime
	}
	return newProjectile(w, x, y, spec.Size, spec.Size, p)
}

func newProjectile(w *ecs.World, x, y, width, height float64, p *component.Projectile) (ecs.Entity, error) {
	e, err := spawnBox(w, x, y, width, height, p.Key(), "")
	if err != nil {
		return 0, fmt.Errorf("projectile: %w", err)
	}
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), p); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}
	return e, nil
}
