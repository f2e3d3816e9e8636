package system

import (
	"math"

	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
)

// blackHoleDeadZone is the distance at which the pull stops.
const blackHoleDeadZone = 5.0

// HazardSystem expires boss hazards, keeps lasers attached to their source,
// applies laser ticks and black-hole pull.
type HazardSystem struct {
	*Deps
}

func NewHazardSystem(d *Deps) *HazardSystem {
	return &HazardSystem{Deps: d}
}

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess, ok := sessionOf(w)
	if !ok {
		return
	}
	ref, hasPlayer := findPlayer(w)

	ecs.ForEach3(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, h *component.Hazard, t *component.Transform, b *component.Body) {
		if sess.Now >= h.ExpiresAt {
			ecs.QueueDestroy(w, e)
			return
		}

		switch h.Kind {
		case component.HazardLaser:
			src, ok := boundsOf(w, ecs.Entity(h.Source))
			if !ok {
				ecs.QueueDestroy(w, e)
				return
			}
			top := src.Y + src.Height/2
			b.Height = math.Max(sess.Height-top, 0)
			t.X = src.X
			t.Y = top + b.Height/2

			if sess.Now < h.NextTickAt {
				return
			}
			h.NextTickAt = sess.Now + h.TickInterval
			if hasPlayer && !sess.PlayerDead && component.Bounds(t, b).Overlaps(ref.bounds()) {
				damagePlayer(w, sess, ref, h.Damage, "hazard.laser", true)
			}
		case component.HazardBlackHole:
			if !hasPlayer {
				return
			}
			dx := t.X - ref.transform.X
			if math.Abs(dx) <= blackHoleDeadZone {
				return
			}
			step := math.Min(h.Pull, math.Abs(dx))
			ref.transform.X = clampX(ref.transform.X+math.Copysign(step, dx), ref.body.Width, sess.Width)
		}
	})
}
