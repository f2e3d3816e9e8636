package system

import (
	"log"

	"github.com/milk9111/starblaster/combat"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/entity"
)

// BossSystem fires boss abilities when their timers come due and the boss
// policy allows it. A denied use still restarts the timer.
type BossSystem struct {
	*Deps
}

func NewBossSystem(d *Deps) *BossSystem {
	return &BossSystem{Deps: d}
}

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess, ok := sessionOf(w)
	if !ok {
		return
	}
	now := sess.Now

	ecs.ForEach3(w, component.BossComponent.Kind(), component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, boss *component.Boss, enemy *component.Enemy, t *component.Transform) {
		if !enemy.Health.Alive() {
			return
		}
		for i := range boss.Abilities {
			timer := &boss.Abilities[i]
			if !timer.Ready(now) {
				continue
			}
			timer.LastAt = now

			allowed, err := s.Policy.Allow(boss.Kind, timer.Ability, enemy.Health.Ratio())
			if err != nil {
				log.Printf("boss: policy kind=%s ability=%s: %v", boss.Kind, timer.Ability, err)
			}
			if !allowed {
				continue
			}
			s.trigger(w, sess, e, boss.Kind, enemy, t, timer.Ability)
		}
	})
}

func (s *BossSystem) trigger(w *ecs.World, sess *component.Session, e ecs.Entity, kind component.BossKind, enemy *component.Enemy, t *component.Transform, ability component.AbilityKind) {
	spec, _ := s.Tuning.Boss(kind).Ability(ability)
	now := sess.Now
	height := 0.0
	width := 0.0
	if b, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		width, height = b.Width, b.Height
	}

	w.Events().Push(ecs.Event{Type: ecs.EventAbility, Entity: e, Key: ability.String()})

	switch ability {
	case component.AbilityDrones:
		x := t.X + combat.Uniform(s.RNG, -spec.Spread, spec.Spread)
		_, _ = entity.NewEnemy(w, s.Tuning, component.BasicDrone, x, t.Y, now)
	case component.AbilityLaser:
		_, _ = entity.NewLaser(w, spec, e, t.X, t.Y+height/2, sess.Height, now)
		s.announce(w, "Laser Beam!")
	case component.AbilityTeleport:
		t.X = s.randomX(width)
	case component.AbilityBlackHole:
		_, _ = entity.NewBlackHole(w, spec, e, t.X, t.Y, now)
		s.announce(w, "Black Hole!")
	case component.AbilitySwarm:
		zapper := s.Tuning.Enemy(component.SpeedyZapper)
		for i := 0; i < spec.Count; i++ {
			_, _ = entity.NewEnemy(w, s.Tuning, component.SpeedyZapper, s.randomX(zapper.Width), t.Y, now)
		}
	case component.AbilityMindControl:
		sess.MindControlUntil = now + spec.Duration
		s.announce(w, "Mind Control!")
	case component.AbilityEMP:
		sess.EMPUntil = now + spec.Duration
		s.announce(w, "EMP! Specials disabled")
	case component.AbilityRegen:
		enemy.Health.Heal(spec.Amount)
	case component.AbilityMissiles:
		for i := 0; i < spec.Count; i++ {
			offset := (float64(i) - float64(spec.Count-1)/2) * spec.Size * 2
			_, _ = entity.NewMissile(w, spec, t.X+offset, t.Y+height/2, now)
		}
	}
}
