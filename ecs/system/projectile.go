package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starblaster/common"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
)

// ProjectileSystem moves every shot, steers homing missiles at the player and
// removes shots that expired or left the arena.
type ProjectileSystem struct {
	*Deps
}

func NewProjectileSystem(d *Deps) *ProjectileSystem {
	return &ProjectileSystem{Deps: d}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess, ok := sessionOf(w)
	if !ok {
		return
	}
	ref, hasPlayer := findPlayer(w)
	warp := s.Tuning.Arena.EnemyShots.TimeWarpFactor

	ecs.ForEach3(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform, b *component.Body) {
		if p.ExpiresAt > 0 && sess.Now >= p.ExpiresAt {
			ecs.QueueDestroy(w, e)
			return
		}

		speed := p.Speed
		if p.Hostile && sess.TimeWarp() {
			speed *= warp
		}

		switch {
		case p.Homing && hasPlayer:
			v := common.Heading(cp.Vector{X: t.X, Y: t.Y}, cp.Vector{X: ref.transform.X, Y: ref.transform.Y}, speed)
			t.X += v.X
			t.Y += v.Y
		case p.Hostile:
			t.Y += speed
		default:
			t.X += math.Sin(p.Angle) * speed
			t.Y -= math.Cos(p.Angle) * speed
		}

		if s.offScreen(sess, p, component.Bounds(t, b)) {
			ecs.QueueDestroy(w, e)
		}
	})
}

// offScreen reports whether a shot can no longer reach anything. Hostile
// shots start above the top edge with their shooter, so only the bottom and
// sides remove them.
func (s *ProjectileSystem) offScreen(sess *component.Session, p *component.Projectile, r common.Rect) bool {
	if r.X+r.Width/2 < 0 || r.X-r.Width/2 > sess.Width {
		return true
	}
	if r.Y-r.Height/2 > sess.Height {
		return true
	}
	return !p.Hostile && r.Y+r.Height/2 < 0
}
