package system

import (
	"github.com/milk9111/starblaster/common"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
)

func sessionOf(w *ecs.World) (*component.Session, bool) {
	return ecs.Singleton(w, component.SessionComponent.Kind())
}

type playerRef struct {
	entity    ecs.Entity
	player    *component.Player
	transform *component.Transform
	body      *component.Body
}

func (r playerRef) bounds() common.Rect {
	return component.Bounds(r.transform, r.body)
}

func findPlayer(w *ecs.World) (playerRef, bool) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return playerRef{}, false
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	t, tok := ecs.Get(w, e, component.TransformComponent.Kind())
	b, bok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !tok || !bok {
		return playerRef{}, false
	}
	return playerRef{entity: e, player: p, transform: t, body: b}, true
}

func boundsOf(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	return component.Bounds(t, b), true
}

// clampX keeps a box of the given width inside [0, arenaWidth].
func clampX(x, width, arenaWidth float64) float64 {
	if width >= arenaWidth {
		return arenaWidth / 2
	}
	return common.ClampFinite(x, width/2, arenaWidth-width/2)
}

// damagePlayer resolves one hit on the player. Contact hits reset the combo
// unless they were lethal.
func damagePlayer(w *ecs.World, sess *component.Session, ref playerRef, raw float64, key string, resetCombo bool) component.HitResult {
	if sess.PlayerDead {
		return component.HitResult{Ignored: true}
	}
	res := ref.player.TakeHit(raw, sess.Now)
	if res.Dealt > 0 || res.Absorbed {
		w.Events().Push(ecs.Event{Type: ecs.EventDamage, Entity: ref.entity, Key: key, Value: res.Dealt})
	}
	if res.Dead {
		sess.PlayerDead = true
		return res
	}
	if resetCombo {
		sess.Combo.Reset()
	}
	return res
}
