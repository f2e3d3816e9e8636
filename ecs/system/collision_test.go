package system

import (
	"testing"

	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyShotHitsPlayer(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	f.sess.Combo.Count = 5

	shot, err := entity.NewEnemyShot(f.w, f.d.Tuning, 640, 620, 50)
	require.NoError(t, err)

	NewCollisionSystem(f.d).Update(f.w)

	assert.InDelta(t, 55.0, f.playerState(t).Health.Current, 1e-9)
	assert.Equal(t, 0, f.sess.Combo.Count)
	assert.False(t, ecs.IsAlive(f.w, shot))
}

func TestShotPiercing(t *testing.T) {
	cases := []struct {
		name      string
		piercing  bool
		wantFirst float64
		wantOther float64
		shotAlive bool
	}{
		{"non_piercing_stops_at_first", false, 15, 20, false},
		{"piercing_hits_both", true, 15, 15, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t, component.AllRounder)
			first := f.enemy(t, component.BasicDrone, 640, 300)
			other := f.enemy(t, component.BasicDrone, 640, 300)
			shot := f.shot(t, 640, 300, entity.ShotOptions{Damage: 5, Piercing: c.piercing})

			sys := NewCollisionSystem(f.d)
			sys.Update(f.w)

			assert.Equal(t, c.wantFirst, f.health(t, first))
			assert.Equal(t, c.wantOther, f.health(t, other))
			assert.Equal(t, c.shotAlive, ecs.IsAlive(f.w, shot))

			// a piercing shot still overlapping does not hit the same enemies again
			sys.Update(f.w)
			assert.Equal(t, c.wantFirst, f.health(t, first))
			assert.Equal(t, c.wantOther, f.health(t, other))
		})
	}
}

func TestPiercingSplashKill(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	target := f.enemy(t, component.BasicDrone, 640, 300)
	near := f.enemy(t, component.BasicDrone, 680, 300)
	edge := f.enemy(t, component.BasicDrone, 690, 300)
	far := f.enemy(t, component.BasicDrone, 700, 300)
	f.shot(t, 640, 300, entity.ShotOptions{Damage: 20, Piercing: true, Splash: true})

	NewCollisionSystem(f.d).Update(f.w)

	assert.False(t, ecs.IsAlive(f.w, target))
	assert.Equal(t, 10.0, f.health(t, near))
	assert.Equal(t, 20.0, f.health(t, edge), "the radius itself is outside the splash")
	assert.Equal(t, 20.0, f.health(t, far))
	assert.Equal(t, 10, f.sess.Score)
	assert.Equal(t, 1, f.sess.Combo.Count)
	assert.Equal(t, 1, f.sess.Kills)
}

func TestSplashZeroedEnemiesAreRemovedSilently(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	f.enemy(t, component.BasicDrone, 640, 300)
	weak := f.enemy(t, component.BasicDrone, 680, 300)
	enemy, _ := ecs.Get(f.w, weak, component.EnemyComponent.Kind())
	enemy.Health.Set(5)

	f.shot(t, 640, 300, entity.ShotOptions{Damage: 10, Splash: true})
	NewCollisionSystem(f.d).Update(f.w)

	assert.False(t, ecs.IsAlive(f.w, weak))
	assert.Equal(t, 0, f.sess.Kills)
	assert.Equal(t, 0, f.sess.Score)
}

func TestSplittingCube(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	cube := f.enemy(t, component.SplittingCube, 640, 300)
	f.shot(t, 640, 300, entity.ShotOptions{Damage: 30})

	sys := NewCollisionSystem(f.d)
	sys.Update(f.w)
	require.False(t, ecs.IsAlive(f.w, cube))

	var children []ecs.Entity
	var xs []float64
	ecs.ForEach2(f.w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, tr *component.Transform) {
		children = append(children, e)
		xs = append(xs, tr.X)
		assert.Equal(t, 20.0, enemy.Size)
		assert.Equal(t, 300.0, tr.Y)
	})
	require.Len(t, children, 2)
	assert.ElementsMatch(t, []float64{630, 650}, xs)

	// a size-20 cube dies without splitting
	f.shot(t, 630, 300, entity.ShotOptions{Damage: 15})
	sys.Update(f.w)
	assert.Equal(t, 1, ecs.Count(f.w, component.EnemyComponent.Kind()))
}

func TestArmoredSaucerAndShieldedOrb(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	saucer := f.enemy(t, component.ArmoredSaucer, 300, 300)
	orb := f.enemy(t, component.ShieldedOrb, 900, 300)
	enemy, _ := ecs.Get(f.w, orb, component.EnemyComponent.Kind())
	enemy.ShieldUntil = 1000

	f.shot(t, 300, 300, entity.ShotOptions{Damage: 10})
	f.shot(t, 900, 300, entity.ShotOptions{Damage: 10})
	NewCollisionSystem(f.d).Update(f.w)

	assert.Equal(t, 35.0, f.health(t, saucer))
	assert.Equal(t, 25.0, f.health(t, orb))
}

func TestTechnoTitanWeakPoints(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	boss, err := entity.NewBoss(f.w, f.d.Tuning, component.TechnoTitan, 640, 300, 0)
	require.NoError(t, err)
	sys := NewCollisionSystem(f.d)

	center := f.shot(t, 640, 300, entity.ShotOptions{Damage: 10})
	sys.Update(f.w)
	assert.Equal(t, 600.0, f.health(t, boss), "body is immune while weak points stand")
	assert.False(t, ecs.IsAlive(f.w, center))

	f.shot(t, 610, 300, entity.ShotOptions{Damage: 60})
	sys.Update(f.w)
	f.shot(t, 670, 300, entity.ShotOptions{Damage: 60})
	sys.Update(f.w)

	enemy, _ := ecs.Get(f.w, boss, component.EnemyComponent.Kind())
	require.True(t, enemy.Exposed())
	assert.Equal(t, 600.0, enemy.Health.Current)

	f.shot(t, 640, 300, entity.ShotOptions{Damage: 10})
	sys.Update(f.w)
	assert.Equal(t, 590.0, f.health(t, boss))
}

func TestEnemyContact(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	f.sess.Combo.Count = 4
	drone := f.enemy(t, component.BasicDrone, 640, 620)

	NewCollisionSystem(f.d).Update(f.w)

	assert.False(t, ecs.IsAlive(f.w, drone))
	assert.InDelta(t, 91.0, f.playerState(t).Health.Current, 1e-9)
	assert.Equal(t, 0, f.sess.Combo.Count)
	assert.Equal(t, 0, f.sess.Score)
}

func TestLethalContactEndsRun(t *testing.T) {
	f := newFixture(t, component.GlassCannon)
	f.sess.Combo.Count = 4
	drone := f.enemy(t, component.BasicDrone, 640, 620)
	enemy, _ := ecs.Get(f.w, drone, component.EnemyComponent.Kind())
	enemy.Damage = 1000

	NewCollisionSystem(f.d).Update(f.w)

	assert.True(t, f.sess.PlayerDead)
	assert.Equal(t, 0.0, f.playerState(t).Health.Current)
	assert.Equal(t, 4, f.sess.Combo.Count)
}

func TestShieldBubbleAbsorbsThreeHits(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	ref, ok := findPlayer(f.w)
	require.True(t, ok)
	f.d.applyPowerUp(f.w, f.sess, ref, component.ShieldBubble)
	require.Equal(t, 3, ref.player.ShieldCharges)

	for i := 0; i < 3; i++ {
		res := damagePlayer(f.w, f.sess, ref, 20, "test", true)
		assert.True(t, res.Absorbed)
		assert.Equal(t, 100.0, ref.player.Health.Current)
	}
	res := damagePlayer(f.w, f.sess, ref, 20, "test", true)
	assert.False(t, res.Absorbed)
	assert.InDelta(t, 82.0, ref.player.Health.Current, 1e-9)
}

func TestPowerUpPickup(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	_, err := entity.NewPowerUp(f.w, f.d.Tuning, component.RapidFire, 640, 620)
	require.NoError(t, err)
	f.w.Events().Drain()

	NewCollisionSystem(f.d).Update(f.w)

	p := f.playerState(t)
	assert.True(t, p.EffectActive(component.RapidFire, 0))
	assert.Equal(t, 6.0, p.FireRate(1, 0))
	assert.Equal(t, 0, ecs.Count(f.w, component.PowerUpComponent.Kind()))

	events := f.w.Events().Drain()
	require.Len(t, eventsOf(events, ecs.EventPickup), 1)
	announcements := eventsOf(events, ecs.EventAnnouncement)
	require.Len(t, announcements, 1)
	assert.Equal(t, "Rapid Fire!", announcements[0].Message)
	assert.Equal(t, 3000.0, announcements[0].Duration)
}

func TestBombClearsRegularEnemies(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	f.enemy(t, component.BasicDrone, 200, 100)
	f.enemy(t, component.SpeedyZapper, 400, 100)
	boss, err := entity.NewBoss(f.w, f.d.Tuning, component.Mothership, 640, 100, 0)
	require.NoError(t, err)
	ref, _ := findPlayer(f.w)

	f.d.applyPowerUp(f.w, f.sess, ref, component.Bomb)
	ecs.FlushDestroyed(f.w)

	assert.Equal(t, 1, ecs.Count(f.w, component.EnemyComponent.Kind()))
	assert.True(t, ecs.IsAlive(f.w, boss))
	assert.Equal(t, 20, f.sess.Score)
	assert.Equal(t, 0, f.sess.Combo.Count)
	assert.Equal(t, 0, f.sess.Kills)
}

func TestHealthPackCapsAtMax(t *testing.T) {
	f := newFixture(t, component.AllRounder)
	ref, _ := findPlayer(f.w)
	ref.player.Health.Set(90)

	f.d.applyPowerUp(f.w, f.sess, ref, component.HealthPack)
	assert.Equal(t, 100.0, ref.player.Health.Current)

	ref.player.Health.Set(50)
	f.d.applyPowerUp(f.w, f.sess, ref, component.HealthPack)
	assert.Equal(t, 75.0, ref.player.Health.Current)
}
