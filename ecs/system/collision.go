package system

import (
	"github.com/milk9111/starblaster/common"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
)

// CollisionSystem resolves overlaps in four fixed categories. Each category
// runs to completion and the destroy queue is flushed before the next one,
// so nothing removed in one pass can be hit in a later pass.
type CollisionSystem struct {
	*Deps
}

func NewCollisionSystem(d *Deps) *CollisionSystem {
	return &CollisionSystem{Deps: d}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess, ok := sessionOf(w)
	if !ok {
		return
	}

	s.projectilesVsEnemies(w, sess)
	ecs.FlushDestroyed(w)

	ref, ok := findPlayer(w)
	if !ok {
		return
	}

	s.playerVsEnemies(w, sess, ref)
	ecs.FlushDestroyed(w)

	s.enemyShotsVsPlayer(w, sess, ref)
	ecs.FlushDestroyed(w)

	s.playerVsPowerUps(w, sess, ref)
	ecs.FlushDestroyed(w)
}

func (s *CollisionSystem) projectilesVsEnemies(w *ecs.World, sess *component.Session) {
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(pe ecs.Entity, p *component.Projectile, _ *component.Transform) {
		if p.Hostile {
			return
		}
		shot, ok := boundsOf(w, pe)
		if !ok {
			return
		}

		ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(ee ecs.Entity, enemy *component.Enemy, t *component.Transform) {
			if !ecs.IsAlive(w, pe) || !enemy.Health.Alive() || p.AlreadyStruck(uint64(ee)) {
				return
			}
			body, ok := boundsOf(w, ee)
			if !ok || !shot.Overlaps(body) {
				return
			}
			s.strike(w, sess, ee, enemy, t, shot, p.Damage)

			if p.Splash {
				s.splash(w, sess, ee, t, p.Damage*s.Tuning.Arena.Shots.SplashFactor)
			}
			if p.Piercing {
				p.Struck = append(p.Struck, uint64(ee))
				return
			}
			ecs.QueueDestroy(w, pe)
		})
	})

	// splash can leave enemies at zero health without a kill
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy) {
		if !enemy.Health.Alive() {
			ecs.QueueDestroy(w, e)
		}
	})
}

// strike applies one direct hit. Intact weak points take the shot when they
// are under it; the body only takes damage once they are all gone.
func (s *CollisionSystem) strike(w *ecs.World, sess *component.Session, e ecs.Entity, enemy *component.Enemy, t *component.Transform, shot common.Rect, damage float64) {
	if !enemy.Exposed() {
		for i := range enemy.WeakPoints {
			wp := &enemy.WeakPoints[i]
			if wp.Destroyed {
				continue
			}
			box := common.Rect{X: t.X + wp.OffsetX, Y: t.Y, Width: wp.Width, Height: wp.Height}
			if !shot.Overlaps(box) {
				continue
			}
			dealt, broke := enemy.HitWeakPoint(i, damage)
			w.Events().Push(ecs.Event{Type: ecs.EventDamage, Entity: e, Key: "weak_point", Value: dealt})
			if broke && enemy.Exposed() {
				s.announce(w, enemy.Name+" is exposed!")
			}
			return
		}
		return
	}

	dealt := enemy.ApplyDamage(damage, sess.Now)
	if dealt > 0 {
		w.Events().Push(ecs.Event{Type: ecs.EventDamage, Entity: e, Key: enemy.Key(), Value: dealt})
	}
	if !enemy.Health.Alive() {
		s.killEnemy(w, sess, e, enemy, t)
	}
}

// splash deals damage to every other live enemy within the splash radius of
// the struck one, edge excluded. Splash damage never scores or chains.
func (s *CollisionSystem) splash(w *ecs.World, sess *component.Session, struck ecs.Entity, center *component.Transform, damage float64) {
	radius := s.Tuning.Arena.Shots.SplashRadius
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		if e == struck || !enemy.Health.Alive() {
			return
		}
		if common.Distance(center.X, center.Y, t.X, t.Y) >= radius {
			return
		}
		if dealt := enemy.ApplyDamage(damage, sess.Now); dealt > 0 {
			w.Events().Push(ecs.Event{Type: ecs.EventDamage, Entity: e, Key: enemy.Key(), Value: dealt})
		}
	})
}

func (s *CollisionSystem) playerVsEnemies(w *ecs.World, sess *component.Session, ref playerRef) {
	player := ref.bounds()
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy) {
		if sess.PlayerDead {
			return
		}
		body, ok := boundsOf(w, e)
		if !ok || !body.Overlaps(player) {
			return
		}
		ecs.QueueDestroy(w, e)
		damagePlayer(w, sess, ref, enemy.Damage, enemy.Key(), true)
	})
}

func (s *CollisionSystem) enemyShotsVsPlayer(w *ecs.World, sess *component.Session, ref playerRef) {
	player := ref.bounds()
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, p *component.Projectile) {
		if !p.Hostile || sess.PlayerDead {
			return
		}
		shot, ok := boundsOf(w, e)
		if !ok || !shot.Overlaps(player) {
			return
		}
		ecs.QueueDestroy(w, e)
		damagePlayer(w, sess, ref, p.Damage, p.Key(), true)
	})
}

func (s *CollisionSystem) playerVsPowerUps(w *ecs.World, sess *component.Session, ref playerRef) {
	if sess.PlayerDead {
		return
	}
	player := ref.bounds()
	ecs.ForEach(w, component.PowerUpComponent.Kind(), func(e ecs.Entity, pu *component.PowerUp) {
		box, ok := boundsOf(w, e)
		if !ok || !box.Overlaps(player) {
			return
		}
		ecs.QueueDestroy(w, e)
		s.applyPowerUp(w, sess, ref, pu.Kind)
	})
}
