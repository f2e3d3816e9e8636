package game

import (
	"sort"
	"strings"

	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
)

// Frame is everything a front-end needs to present one frame.
type Frame struct {
	State         State
	Entities      []EntitySnapshot
	HUD           HUD
	Announcements []Announcement
	Events        []ecs.Event
}

// EntitySnapshot is a drawable view of one entity. X and Y are the center.
type EntitySnapshot struct {
	Entity    ecs.Entity
	Key       string
	Label     string
	Layer     int
	X, Y      float64
	Width     float64
	Height    float64
	Health    float64
	MaxHealth float64

	Invulnerable  bool
	Shielded      bool
	SpecialActive bool
	Boss          bool
	Hostile       bool
	Piercing      bool
}

// Status is a timed effect with its remaining milliseconds.
type Status struct {
	Name      string
	Remaining float64
}

type HUD struct {
	Archetype string
	Elapsed   float64
	Score     int
	Kills     int

	Health    float64
	MaxHealth float64

	ComboLevel      int
	ComboCount      int
	ComboMultiplier float64
	ComboRemaining  float64

	SpecialName     string
	SpecialCooldown float64
	SpecialActive   bool
	ShieldCharges   int

	Statuses []Status
	Effects  []Status
}

const (
	layerHazard = iota
	layerPowerUp
	layerEnemy
	layerBoss
	layerProjectile
	layerPlayer
	layerOverlay
)

func layerOf(key string) int {
	family, _, _ := strings.Cut(key, ".")
	switch family {
	case "hazard":
		return layerHazard
	case "powerup":
		return layerPowerUp
	case "enemy":
		return layerEnemy
	case "boss":
		return layerBoss
	case "projectile":
		return layerProjectile
	case "player", "sidekick":
		return layerPlayer
	default:
		return layerOverlay
	}
}

func snapshotEntities(w *ecs.World, now float64) []EntitySnapshot {
	var out []EntitySnapshot
	ecs.ForEach3(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, sp *component.Sprite, t *component.Transform, b *component.Body) {
		snap := EntitySnapshot{
			Entity: e,
			Key:    sp.Key,
			Label:  sp.Label,
			Layer:  layerOf(sp.Key),
			X:      t.X,
			Y:      t.Y,
			Width:  b.Width,
			Height: b.Height,
		}

		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			snap.Health, snap.MaxHealth = p.Health.Current, p.Health.Max
			snap.Invulnerable = p.Invulnerable(now)
			snap.Shielded = p.ShieldCharges > 0
			snap.SpecialActive = p.SpecialActive(now)
		}
		if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
			snap.Health, snap.MaxHealth = enemy.Health.Current, enemy.Health.Max
			snap.Shielded = enemy.Shielded(now) || !enemy.Exposed()
			snap.Boss = enemy.IsBoss()
			snap.Hostile = true
		}
		if p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok {
			snap.Hostile = p.Hostile
			snap.Piercing = p.Piercing
		}
		if _, ok := ecs.Get(w, e, component.HazardComponent.Kind()); ok {
			snap.Hostile = true
		}
		out = append(out, snap)

		if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
			for _, wp := range enemy.WeakPoints {
				if wp.Destroyed {
					continue
				}
				out = append(out, EntitySnapshot{
					Entity:    e,
					Key:       "weak_point",
					Layer:     layerOverlay,
					X:         t.X + wp.OffsetX,
					Y:         t.Y,
					Width:     wp.Width,
					Height:    wp.Height,
					Health:    wp.Health.Current,
					MaxHealth: wp.Health.Max,
					Hostile:   true,
				})
			}
		}
	})

	sort.SliceStable(out, func(i, j int) bool { return out[i].Layer < out[j].Layer })
	return out
}

func buildHUD(w *ecs.World) HUD {
	var hud HUD
	sess, ok := ecs.Singleton(w, component.SessionComponent.Kind())
	if !ok {
		return hud
	}
	now := sess.Now

	hud.Elapsed = sess.Elapsed()
	hud.Score = sess.Score
	hud.Kills = sess.Kills
	hud.ComboLevel = sess.Combo.Level
	hud.ComboCount = sess.Combo.Count
	hud.ComboMultiplier = sess.Combo.ScoreMultiplier()
	hud.ComboRemaining = sess.Combo.Remaining(now)

	for _, st := range []struct {
		name  string
		until float64
	}{
		{"EMP", sess.EMPUntil},
		{"Mind Control", sess.MindControlUntil},
		{"Time Warp", sess.TimeWarpUntil},
	} {
		if now < st.until {
			hud.Statuses = append(hud.Statuses, Status{Name: st.name, Remaining: st.until - now})
		}
	}

	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return hud
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	hud.Archetype = p.Stats.Name
	hud.Health = p.Health.Current
	hud.MaxHealth = p.Health.Max
	hud.SpecialName = p.Stats.SpecialName
	hud.SpecialCooldown = p.CooldownFraction(now)
	hud.SpecialActive = p.SpecialActive(now)
	hud.ShieldCharges = p.ShieldCharges

	for _, kind := range component.PowerUpKinds {
		if until, ok := p.Effects[kind]; ok && now < until {
			hud.Effects = append(hud.Effects, Status{Name: strings.TrimSuffix(kind.Title(), "!"), Remaining: until - now})
		}
	}
	return hud
}
