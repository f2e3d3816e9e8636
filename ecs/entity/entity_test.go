package entity

import (
	"math"
	"testing"

	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTuning(t *testing.T) *prefabs.Tuning {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)
	return tuning
}

func TestNewPlayer(t *testing.T) {
	tuning := loadTuning(t)
	w := ecs.NewWorld()

	e, err := NewPlayer(w, tuning, component.AllRounder, 1000)
	require.NoError(t, err)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 640.0, tr.X)
	assert.Equal(t, 620.0, tr.Y)

	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	assert.Equal(t, "player.all_rounder", sprite.Key)

	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	assert.Equal(t, 100.0, p.Health.Current)
	assert.True(t, p.SpecialReady(1000))
	assert.True(t, ecs.Has(w, e, component.InputComponent.Kind()))
}

func TestNewEnemyVariants(t *testing.T) {
	tuning := loadTuning(t)
	w := ecs.NewWorld()

	zapper, err := NewEnemy(w, tuning, component.SpeedyZapper, 300, -50, 0)
	require.NoError(t, err)
	z, _ := ecs.Get(w, zapper, component.EnemyComponent.Kind())
	assert.Equal(t, component.MotionZigzag, z.Motion.Pattern)
	assert.Equal(t, 300.0, z.Motion.StartX)

	orb, err := NewEnemy(w, tuning, component.ShieldedOrb, 300, -50, 1000)
	require.NoError(t, err)
	o, _ := ecs.Get(w, orb, component.EnemyComponent.Kind())
	assert.Equal(t, 6000.0, o.NextShieldAt)
	assert.False(t, o.Shielded(1000))

	cube, err := NewEnemy(w, tuning, component.SplittingCube, 300, -50, 0)
	require.NoError(t, err)
	c, _ := ecs.Get(w, cube, component.EnemyComponent.Kind())
	assert.Equal(t, 40.0, c.Size)
	assert.Equal(t, 30.0, c.Health.Max)
	b, _ := ecs.Get(w, cube, component.BodyComponent.Kind())
	assert.Equal(t, 40.0, b.Width)

	child, err := NewSplittingCube(w, tuning, 20, 0, 0, 0)
	require.NoError(t, err)
	ch, _ := ecs.Get(w, child, component.EnemyComponent.Kind())
	assert.Equal(t, 15.0, ch.Health.Max)

	events := w.Events().Drain()
	require.Len(t, events, 4)
	assert.Equal(t, ecs.EventSpawn, events[0].Type)
	assert.Equal(t, "enemy.speedy_zapper", events[0].Key)
}

func TestNewBoss(t *testing.T) {
	tuning := loadTuning(t)
	w := ecs.NewWorld()

	e, err := NewBoss(w, tuning, component.TechnoTitan, 640, -150, 5000)
	require.NoError(t, err)

	enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
	assert.True(t, enemy.IsBoss())
	assert.Equal(t, "Techno Titan", enemy.Name)
	require.Len(t, enemy.WeakPoints, 2)
	assert.Equal(t, -30.0, enemy.WeakPoints[0].OffsetX)
	assert.Equal(t, 30.0, enemy.WeakPoints[1].OffsetX)
	assert.False(t, enemy.Exposed())

	boss, _ := ecs.Get(w, e, component.BossComponent.Kind())
	require.Len(t, boss.Abilities, 1)
	assert.Equal(t, component.AbilityEMP, boss.Abilities[0].Ability)
	assert.False(t, boss.Abilities[0].Ready(5000))
	assert.True(t, boss.Abilities[0].Ready(35000))

	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	assert.Equal(t, "boss.techno_titan", sprite.Key)
	assert.Equal(t, "Techno Titan", sprite.Label)
}

func TestNonFinitePositionsAreSanitized(t *testing.T) {
	tuning := loadTuning(t)
	w := ecs.NewWorld()

	e, err := NewPowerUp(w, tuning, component.Bomb, math.NaN(), math.Inf(1))
	require.NoError(t, err)
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Equal(t, 0.0, tr.X)
	assert.Equal(t, 0.0, tr.Y)
}

func TestProjectiles(t *testing.T) {
	tuning := loadTuning(t)
	w := ecs.NewWorld()

	shot, err := NewPlayerShot(w, tuning, 10, 20, ShotOptions{Damage: 8, Piercing: true})
	require.NoError(t, err)
	p, _ := ecs.Get(w, shot, component.ProjectileComponent.Kind())
	assert.Equal(t, 7.0, p.Speed)
	assert.True(t, p.Piercing)
	assert.Equal(t, "projectile.player", p.Key())

	spec, _ := tuning.Boss(component.CosmicHydra).Ability(component.AbilityMissiles)
	missile, err := NewMissile(w, spec, 0, 0, 1000)
	require.NoError(t, err)
	m, _ := ecs.Get(w, missile, component.ProjectileComponent.Kind())
	assert.True(t, m.Homing)
	assert.Equal(t, 9000.0, m.ExpiresAt)
	b, _ := ecs.Get(w, missile, component.BodyComponent.Kind())
	assert.Equal(t, 10.0, b.Width)
}
