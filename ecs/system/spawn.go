package system

import (
	"math"

	"github.com/milk9111/starblaster/combat"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/entity"
	"github.com/milk9111/starblaster/prefabs"
)

// SpawnSystem schedules regular enemies, unlocked special variants, bosses
// and power-ups against the run clock.
type SpawnSystem struct {
	*Deps

	started       bool
	lastEnemyAt   float64
	nextBossAt    float64
	nextPowerUpAt float64
}

func NewSpawnSystem(d *Deps) *SpawnSystem {
	return &SpawnSystem{Deps: d}
}

// EnemyInterval is the regular spawn interval after the given number of
// minutes: it shrinks linearly down to a floor.
func (s *SpawnSystem) EnemyInterval(minutes float64) float64 {
	spec := s.Tuning.Spawn
	return math.Max(spec.BaseInterval-minutes*spec.PerMinute, spec.MinInterval)
}

func (s *SpawnSystem) NextBossAt() float64 {
	return s.nextBossAt
}

func (s *SpawnSystem) NextPowerUpAt() float64 {
	return s.nextPowerUpAt
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess, ok := sessionOf(w)
	if !ok || sess.PlayerDead {
		return
	}
	spec := s.Tuning.Spawn
	now := sess.Now

	if !s.started {
		s.started = true
		s.lastEnemyAt = sess.StartedAt
		s.nextBossAt = sess.StartedAt + spec.BossAfter*60000
		s.nextPowerUpAt = sess.StartedAt + combat.Uniform(s.RNG, spec.PowerUpPeriod.Min, spec.PowerUpPeriod.Max)
	}

	minutes := sess.ElapsedMinutes()
	if now-s.lastEnemyAt >= s.EnemyInterval(minutes) {
		s.lastEnemyAt = now
		if kind, ok := prefabs.EnemyKindByName(spec.Regular); ok {
			s.spawnEnemy(w, kind, now)
		}
	}

	for _, special := range spec.Specials {
		if minutes < special.AfterMinutes {
			continue
		}
		if !combat.Chance(s.RNG, special.Chance) {
			continue
		}
		if kind, ok := prefabs.EnemyKindByName(special.Kind); ok {
			s.spawnEnemy(w, kind, now)
		}
	}

	if now >= s.nextBossAt {
		s.nextBossAt = now + combat.Uniform(s.RNG, spec.BossInterval.Min, spec.BossInterval.Max)
		s.spawnBoss(w, sess)
	}

	if now >= s.nextPowerUpAt {
		s.nextPowerUpAt = now + combat.Uniform(s.RNG, spec.PowerUpPeriod.Min, spec.PowerUpPeriod.Max)
		kind := s.drops.Pick(s.RNG)
		_, _ = entity.NewPowerUp(w, s.Tuning, kind, s.randomX(s.Tuning.PowerUps.Size), s.Tuning.Arena.SpawnY)
	}
}

func (s *SpawnSystem) spawnEnemy(w *ecs.World, kind component.EnemyKind, now float64) {
	spec := s.Tuning.Enemy(kind)
	width := spec.Width
	if kind == component.SplittingCube {
		width = spec.Size
	}
	_, _ = entity.NewEnemy(w, s.Tuning, kind, s.randomX(width), s.Tuning.Arena.SpawnY, now)
}

func (s *SpawnSystem) spawnBoss(w *ecs.World, sess *component.Session) {
	kind := component.BossKinds[combat.Index(s.RNG, len(component.BossKinds))]
	if _, err := entity.NewBoss(w, s.Tuning, kind, sess.Width/2, s.Tuning.Arena.BossSpawnY, sess.Now); err != nil {
		return
	}
	s.announce(w, s.Tuning.Boss(kind).Name+" approaches!")
}
