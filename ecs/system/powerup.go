package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starblaster/common"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/entity"
)

// PowerUpSystem lets pickups fall, pulls them toward a magnetized player and
// drops the ones that left the arena.
type PowerUpSystem struct {
	*Deps
}

func NewPowerUpSystem(d *Deps) *PowerUpSystem {
	return &PowerUpSystem{Deps: d}
}

func (s *PowerUpSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess, ok := sessionOf(w)
	if !ok {
		return
	}
	ref, hasPlayer := findPlayer(w)
	magnet := hasPlayer && ref.player.EffectActive(component.Magnet, sess.Now)
	spec := s.Tuning.Arena.Magnet

	ecs.ForEach3(w, component.PowerUpComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, pu *component.PowerUp, t *component.Transform, b *component.Body) {
		pulled := false
		if magnet {
			pos := cp.Vector{X: t.X, Y: t.Y}
			target := cp.Vector{X: ref.transform.X, Y: ref.transform.Y}
			if pos.Distance(target) <= spec.Radius {
				pos = common.StepToward(pos, target, spec.Speed)
				t.X, t.Y = pos.X, pos.Y
				pulled = true
			}
		}
		if !pulled {
			t.Y += pu.FallSpeed
		}

		if t.Y-b.Height/2 > sess.Height {
			ecs.QueueDestroy(w, e)
		}
	})
}

// applyPowerUp activates a collected pickup.
func (d *Deps) applyPowerUp(w *ecs.World, sess *component.Session, ref playerRef, kind component.PowerUpKind) {
	spec := d.Tuning.PowerUp(kind)
	p := ref.player
	now := sess.Now

	switch kind {
	case component.RapidFire, component.SpreadShot, component.PiercingShot, component.Magnet:
		p.Activate(kind, now, spec.Duration)
	case component.ShieldBubble:
		p.Activate(kind, now, spec.Duration)
		p.ShieldCharges = spec.Charges
	case component.HealthPack:
		p.Health.Heal(spec.Amount * p.Health.Max)
	case component.Bomb:
		d.bomb(w, sess, spec.Score)
	case component.SidekickDrop:
		p.Activate(kind, now, spec.Duration)
		if p.Sidekick != 0 && ecs.IsAlive(w, ecs.Entity(p.Sidekick)) {
			break
		}
		if e, err := entity.NewSidekick(w, d.Tuning, ref.entity, ref.transform.X, ref.transform.Y); err == nil {
			p.Sidekick = uint64(e)
		}
	case component.UltimateCharge:
		p.ChargeSpecial(now)
	case component.TimeWarp:
		sess.TimeWarpUntil = now + spec.Duration
	}

	w.Events().Push(ecs.Event{Type: ecs.EventPickup, Entity: ref.entity, Key: "powerup." + kind.String()})
	d.announce(w, kind.Title())
}

// bomb clears every regular enemy. Cleared enemies score but are not kills.
func (d *Deps) bomb(w *ecs.World, sess *component.Session, perEnemy float64) {
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy) {
		if enemy.IsBoss() {
			return
		}
		ecs.QueueDestroy(w, e)
		gained := sess.AddScore(perEnemy)
		w.Events().Push(ecs.Event{Type: ecs.EventScore, Entity: e, Key: enemy.Key(), Value: float64(gained)})
	})
}
