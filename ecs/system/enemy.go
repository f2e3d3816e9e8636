package system

import (
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/entity"
)

// EnemySystem moves enemies and bosses down the arena, cycles orb shields,
// fires enemy shots and handles enemies that slip past the bottom edge.
type EnemySystem struct {
	*Deps
}

func NewEnemySystem(d *Deps) *EnemySystem {
	return &EnemySystem{Deps: d}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess, ok := sessionOf(w)
	if !ok {
		return
	}
	now := sess.Now
	arena := s.Tuning.Arena

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform, b *component.Body) {
		speed := enemy.Speed
		if sess.TimeWarp() {
			speed *= arena.EnemyShots.TimeWarpFactor
		}
		t.Y += speed

		enemy.Motion.Age++
		if enemy.Motion.Pattern == component.MotionZigzag {
			t.X = enemy.Motion.StartX + enemy.Motion.OffsetX()
		}

		if enemy.ShieldCooldown > 0 && now >= enemy.NextShieldAt {
			enemy.ShieldUntil = now + enemy.ShieldDuration
			enemy.NextShieldAt = now + enemy.ShieldDuration + enemy.ShieldCooldown
		}

		if enemy.CanShoot(now) {
			enemy.LastShotAt = now
			_, _ = entity.NewEnemyShot(w, s.Tuning, t.X, t.Y+b.Height/2, enemy.Damage)
		}

		if t.Y > sess.Height+arena.BreachMargin {
			s.breach(w, sess, e, enemy)
		}
	})
}

// breach removes an enemy that got past the player and charges its damage.
func (s *EnemySystem) breach(w *ecs.World, sess *component.Session, e ecs.Entity, enemy *component.Enemy) {
	ecs.QueueDestroy(w, e)
	if ref, ok := findPlayer(w); ok {
		damagePlayer(w, sess, ref, enemy.Damage, enemy.Key(), false)
	}
}
