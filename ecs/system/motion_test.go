package system

import (
	"math"
	"testing"

	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyDescentAndTimeWarp(t *testing.T) {
	cases := []struct {
		name  string
		warp  bool
		wantY float64
	}{
		{"normal", false, 1},
		{"time_warp_halves", true, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t, component.AllRounder)
			if c.warp {
				f.sess.TimeWarpUntil = 8000
			}
			drone := f.enemy(t, component.BasicDrone, 300, 0)
			NewEnemySystem(f.d).Update(f.w)
			tr, _ := ecs.Get(f.w, drone, component.TransformComponent.Kind())
			assert.Equal(t, c.wantY, tr.Y)
		})
	}
}

func TestZigzagMotion(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	zapper := f.enemy(t, component.SpeedyZapper, 300, 0)
	sys := NewEnemySystem(f.d)
	for i := 0; i < 10; i++ {
		sys.Update(f.w)
	}
	tr, _ := ecs.Get(f.w, zapper, component.TransformComponent.Kind())
	assert.InDelta(t, 300+50*math.Sin(0.05*10), tr.X, 1e-9)
	assert.Equal(t, 20.0, tr.Y)
}

func TestOrbShieldCycle(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	orb := f.enemy(t, component.ShieldedOrb, 300, 0)
	enemy, _ := ecs.Get(f.w, orb, component.EnemyComponent.Kind())
	sys := NewEnemySystem(f.d)

	steps := []struct {
		now      float64
		shielded bool
	}{
		{4999, false},
		{5000, true},
		{6999, true},
		{7000, false},
		{11999, false},
		{12000, true},
	}
	for _, step := range steps {
		f.sess.Now = step.now
		sys.Update(f.w)
		assert.Equal(t, step.shielded, enemy.Shielded(step.now), "at %v", step.now)
	}
}

func TestEnemyFiring(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	f.enemy(t, component.BasicDrone, 300, 100)
	sys := NewEnemySystem(f.d)

	f.sess.Now = 4999
	sys.Update(f.w)
	assert.Equal(t, 0, ecs.Count(f.w, component.ProjectileComponent.Kind()))

	f.sess.Now = 5000
	sys.Update(f.w)
	shot, ok := ecs.First(f.w, component.ProjectileComponent.Kind())
	require.True(t, ok)
	p, _ := ecs.Get(f.w, shot, component.ProjectileComponent.Kind())
	assert.True(t, p.Hostile)
	assert.Equal(t, 10.0, p.Damage)
	tr, _ := ecs.Get(f.w, shot, component.TransformComponent.Kind())
	assert.Equal(t, 100.0+2+35, tr.Y)
}

func TestBreachDamagesWithoutComboReset(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	f.sess.Combo.Count = 3
	drone := f.enemy(t, component.BasicDrone, 300, 820)

	NewEnemySystem(f.d).Update(f.w)

	assert.False(t, ecs.IsAlive(f.w, drone))
	assert.InDelta(t, 91.0, f.playerState(t).Health.Current, 1e-9)
	assert.Equal(t, 3, f.sess.Combo.Count)
}

func TestProjectileMotion(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	straight := f.shot(t, 300, 300, entity.ShotOptions{Damage: 1})
	angled := f.shot(t, 300, 300, entity.ShotOptions{Damage: 1, Angle: 0.1})
	enemyShot, err := entity.NewEnemyShot(f.w, f.d.Tuning, 300, 300, 5)
	require.NoError(t, err)
	spec, _ := f.d.Tuning.Boss(component.CosmicHydra).Ability(component.AbilityMissiles)
	missile, err := entity.NewMissile(f.w, spec, 640, 100, 0)
	require.NoError(t, err)

	NewProjectileSystem(f.d).Update(f.w)

	pos := func(e ecs.Entity) *component.Transform {
		tr, ok := ecs.Get(f.w, e, component.TransformComponent.Kind())
		require.True(t, ok)
		return tr
	}
	assert.Equal(t, 293.0, pos(straight).Y)
	assert.InDelta(t, 300+math.Sin(0.1)*7, pos(angled).X, 1e-9)
	assert.InDelta(t, 300-math.Cos(0.1)*7, pos(angled).Y, 1e-9)
	assert.Equal(t, 305.0, pos(enemyShot).Y)
	assert.InDelta(t, 640.0, pos(missile).X, 1e-9)
	assert.InDelta(t, 103.0, pos(missile).Y, 1e-9)
}

func TestProjectileCleanup(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	gone := f.shot(t, 300, -1, entity.ShotOptions{Damage: 1})
	stays := f.shot(t, 300, 100, entity.ShotOptions{Damage: 1})
	aboveTop, err := entity.NewEnemyShot(f.w, f.d.Tuning, 300, -20, 5)
	require.NoError(t, err)
	spec, _ := f.d.Tuning.Boss(component.CosmicHydra).Ability(component.AbilityMissiles)
	missile, err := entity.NewMissile(f.w, spec, 640, 100, 0)
	require.NoError(t, err)

	sys := NewProjectileSystem(f.d)
	sys.Update(f.w)
	assert.False(t, ecs.IsAlive(f.w, gone))
	assert.True(t, ecs.IsAlive(f.w, stays))
	assert.True(t, ecs.IsAlive(f.w, aboveTop), "enemy shots may start above the arena")
	assert.True(t, ecs.IsAlive(f.w, missile))

	f.sess.Now = 8000
	sys.Update(f.w)
	assert.False(t, ecs.IsAlive(f.w, missile), "missiles expire")
}

func TestPowerUpFallAndMagnet(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	near, err := entity.NewPowerUp(f.w, f.d.Tuning, component.Bomb, 640, 500)
	require.NoError(t, err)
	far, err := entity.NewPowerUp(f.w, f.d.Tuning, component.Bomb, 100, 100)
	require.NoError(t, err)
	sys := NewPowerUpSystem(f.d)

	sys.Update(f.w)
	tr, _ := ecs.Get(f.w, near, component.TransformComponent.Kind())
	assert.Equal(t, 502.0, tr.Y)

	f.playerState(t).Activate(component.Magnet, 0, 20000)
	sys.Update(f.w)
	assert.Equal(t, 506.0, tr.Y)
	assert.Equal(t, 640.0, tr.X)

	ftr, _ := ecs.Get(f.w, far, component.TransformComponent.Kind())
	assert.Equal(t, 104.0, ftr.Y, "outside the magnet radius it keeps falling")

	ftr.Y = 731
	sys.Update(f.w)
	assert.False(t, ecs.IsAlive(f.w, far))
}

func TestComboDecay(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	f.sess.Combo.Increment(0)
	f.sess.Combo.Increment(100)
	sys := NewComboSystem()

	f.sess.Now = 5100
	sys.Update(f.w)
	assert.Equal(t, 2, f.sess.Combo.Count)

	f.sess.Now = 5101
	sys.Update(f.w)
	assert.Equal(t, 0, f.sess.Combo.Count)
	assert.Equal(t, 1, f.sess.Combo.Level)
	require.Len(t, eventsOf(f.w.Events().Drain(), ecs.EventCombo), 1)
}
