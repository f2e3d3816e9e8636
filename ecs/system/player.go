package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starblaster/combat"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/entity"
)

// PlayerSystem applies the frame's intents: movement, the special, shooting.
// It also expires timed effects and keeps the sidekick in orbit.
type PlayerSystem struct {
	*Deps
}

func NewPlayerSystem(d *Deps) *PlayerSystem {
	return &PlayerSystem{Deps: d}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess, ok := sessionOf(w)
	if !ok || sess.PlayerDead {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, p *component.Player, in *component.Input) {
		ref, ok := findPlayer(w)
		if !ok || ref.entity != e {
			return
		}

		s.expireEffects(w, sess, p)
		s.move(sess, ref, in)

		if in.Special && !sess.EMP() && p.SpecialReady(sess.Now) {
			s.useSpecial(w, sess, ref)
		}
		if in.Firing && p.CanShoot(sess.Combo.Level, sess.Now) {
			s.fire(w, sess, ref)
		}
	})

	s.orbitSidekicks(w)
}

func (s *PlayerSystem) move(sess *component.Session, ref playerRef, in *component.Input) {
	dir := in.Direction()
	if sess.MindControl() {
		dir = -dir
	}
	if dir == 0 {
		return
	}
	x := ref.transform.X + dir*ref.player.Stats.Speed
	ref.transform.X = clampX(x, ref.body.Width, sess.Width)
}

func (s *PlayerSystem) expireEffects(w *ecs.World, sess *component.Session, p *component.Player) {
	for kind, until := range p.Effects {
		if sess.Now < until {
			continue
		}
		delete(p.Effects, kind)
		switch kind {
		case component.ShieldBubble:
			p.ShieldCharges = 0
		case component.SidekickDrop:
			if p.Sidekick != 0 {
				ecs.QueueDestroy(w, ecs.Entity(p.Sidekick))
				p.Sidekick = 0
			}
		}
	}
}

func (s *PlayerSystem) useSpecial(w *ecs.World, sess *component.Session, ref playerRef) {
	p := ref.player
	now := sess.Now
	p.LastSpecialAt = now
	p.SpecialUntil = now + p.Stats.SpecialDuration

	w.Events().Push(ecs.Event{Type: ecs.EventAbility, Entity: ref.entity, Key: "special." + p.Kind.String()})
	s.announce(w, p.Stats.SpecialName+"!")

	switch p.Kind {
	case component.Speedster:
		dir := 1.0
		if combat.Chance(s.RNG, 0.5) {
			dir = -1
		}
		x := ref.transform.X + dir*p.Stats.Speed*p.Stats.DodgeDistance
		ref.transform.X = clampX(x, ref.body.Width, sess.Width)
		p.InvulnerableUntil = now + p.Stats.SpecialDuration
	case component.Tank, component.GlassCannon:
		// fortify and surge are read from SpecialUntil
	case component.AllRounder:
		s.energyWave(w, sess, p.Stats.WaveDamage)
	}
}

// energyWave hits every enemy through its damage gate. Kills are credited
// like any other player kill.
func (s *PlayerSystem) energyWave(w *ecs.World, sess *component.Session, damage float64) {
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		if !enemy.Health.Alive() {
			return
		}
		dealt := enemy.ApplyDamage(damage, sess.Now)
		if dealt > 0 {
			w.Events().Push(ecs.Event{Type: ecs.EventDamage, Entity: e, Key: enemy.Key(), Value: dealt})
		}
		if !enemy.Health.Alive() {
			s.killEnemy(w, sess, e, enemy, t)
		}
	})
}

func (s *PlayerSystem) fire(w *ecs.World, sess *component.Session, ref playerRef) {
	p := ref.player
	now := sess.Now
	p.LastShotAt = now

	shots := s.Tuning.Arena.Shots
	angles := []float64{0}
	if p.EffectActive(component.SpreadShot, now) && len(shots.SpreadAngles) > 0 {
		angles = shots.SpreadAngles
	}
	opts := entity.ShotOptions{
		Damage:   p.ShotDamage(now),
		Piercing: p.EffectActive(component.PiercingShot, now),
		Splash:   shots.SplashComboLevel > 0 && sess.Combo.Level >= shots.SplashComboLevel,
	}

	muzzleY := ref.transform.Y - ref.body.Height/2
	for _, angle := range angles {
		opts.Angle = angle
		_, _ = entity.NewPlayerShot(w, s.Tuning, ref.transform.X, muzzleY, opts)
	}

	if p.Sidekick == 0 {
		return
	}
	st, ok := ecs.Get(w, ecs.Entity(p.Sidekick), component.TransformComponent.Kind())
	if !ok {
		p.Sidekick = 0
		return
	}
	opts.Angle = 0
	opts.Damage *= s.Tuning.Arena.Sidekick.DamageFactor
	_, _ = entity.NewPlayerShot(w, s.Tuning, st.X, st.Y, opts)
}

// orbitSidekicks circles each sidekick around its anchor beside the owner.
// Orphaned sidekicks are removed.
func (s *PlayerSystem) orbitSidekicks(w *ecs.World) {
	ecs.ForEach2(w, component.SidekickComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sk *component.Sidekick, t *component.Transform) {
		owner, ok := ecs.Get(w, ecs.Entity(sk.Owner), component.TransformComponent.Kind())
		if !ok {
			ecs.QueueDestroy(w, e)
			return
		}
		sk.Angle = math.Mod(sk.Angle+sk.AngularSpeed, 2*math.Pi)
		anchor := cp.Vector{X: owner.X + sk.OffsetX, Y: owner.Y + sk.OffsetY}
		pos := anchor.Add(cp.ForAngle(sk.Angle).Mult(sk.Radius))
		t.X, t.Y = pos.X, pos.Y
	})
}
