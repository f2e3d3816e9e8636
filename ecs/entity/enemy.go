package entity

import (
	"fmt"

	"github.com/milk9111/starblaster/combat"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/prefabs"
)

// NewEnemy spawns a regular enemy. Splitting cubes use their configured
// spawn size.
func NewEnemy(w *ecs.World, tuning *prefabs.Tuning, kind component.EnemyKind, x, y, now float64) (ecs.Entity, error) {
	if kind == component.SplittingCube {
		return NewSplittingCube(w, tuning, tuning.Enemy(kind).Size, x, y, now)
	}
	spec := tuning.Enemy(kind)
	return newEnemy(w, kind, spec, spec.Health, spec.Width, spec.Height, 0, x, y, now)
}

// NewSplittingCube spawns a cube of the given size. Cubes at or below the
// split threshold use the child health.
func NewSplittingCube(w *ecs.World, tuning *prefabs.Tuning, size, x, y, now float64) (ecs.Entity, error) {
	spec := tuning.Enemy(component.SplittingCube)
	health := spec.Health
	if size <= tuning.Arena.Split.Threshold && spec.ChildHealth > 0 {
		health = spec.ChildHealth
	}
	return newEnemy(w, component.SplittingCube, spec, health, size, size, size, x, y, now)
}

func newEnemy(w *ecs.World, kind component.EnemyKind, spec prefabs.EnemySpec, health, width, height, size, x, y, now float64) (ecs.Entity, error) {
	key := "enemy." + kind.String()
	e, err := spawnBox(w, x, y, width, height, key, "")
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}

	enemy := &component.Enemy{
		Kind:         kind,
		Name:         spec.Name,
		Health:       combat.NewHealth(health),
		Damage:       spec.Damage,
		Speed:        spec.Speed,
		FireRate:     spec.FireRate,
		DamageFactor: spec.DamageFactor,
		SpawnedAt:    now,
		LastShotAt:   now,
		Size:         size,
		Motion:       component.Motion{Pattern: component.MotionStraight, StartX: x},
	}
	if spec.Zigzag != nil {
		enemy.Motion.Pattern = component.MotionZigzag
		enemy.Motion.Amplitude = spec.Zigzag.Amplitude
		enemy.Motion.Frequency = spec.Zigzag.Frequency
	}
	if spec.Shield != nil {
		enemy.ShieldCooldown = spec.Shield.Cooldown
		enemy.ShieldDuration = spec.Shield.Duration
		enemy.NextShieldAt = now + spec.Shield.Cooldown
	}

	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), enemy); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}
	announceSpawn(w, e, key)
	return e, nil
}

// NewBoss spawns a boss with its ability timers starting at now.
func NewBoss(w *ecs.World, tuning *prefabs.Tuning, kind component.BossKind, x, y, now float64) (ecs.Entity, error) {
	spec := tuning.Boss(kind)
	key := "boss." + kind.String()

	e, err := spawnBox(w, x, y, spec.Width, spec.Height, key, spec.Name)
	if err != nil {
		return 0, fmt.Errorf("boss: %w", err)
	}

	enemy := &component.Enemy{
		Boss:       kind,
		Name:       spec.Name,
		Health:     combat.NewHealth(spec.Health),
		Damage:     spec.Damage,
		Speed:      spec.Speed,
		FireRate:   spec.FireRate,
		SpawnedAt:  now,
		LastShotAt: now,
		Motion:     component.Motion{Pattern: component.MotionStraight, StartX: x},
	}
	if wp := spec.WeakPoints; wp != nil {
		for _, side := range []float64{-1, 1} {
			enemy.WeakPoints = append(enemy.WeakPoints, component.WeakPoint{
				OffsetX: side * wp.Offset,
				Width:   wp.Width,
				Height:  wp.Height,
				Health:  combat.NewHealth(wp.Health),
			})
		}
	}
	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), enemy); err != nil {
		return 0, fmt.Errorf("boss: add enemy: %w", err)
	}

	boss := &component.Boss{Kind: kind}
	for _, ability := range component.BossAbilities(kind) {
		a, _ := spec.Ability(ability)
		boss.Abilities = append(boss.Abilities, component.AbilityTimer{Ability: ability, Interval: a.Interval, LastAt: now})
	}
	if err := ecs.Add(w, e, component.BossComponent.Kind(), boss); err != nil {
		return 0, fmt.Errorf("boss: add boss: %w", err)
	}

	announceSpawn(w, e, key)
	return e, nil
}
