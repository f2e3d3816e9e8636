package system

import (
	"fmt"

	"github.com/milk9111/starblaster/combat"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/prefabs"
)

// Deps bundles what the gameplay systems are built from. One Deps serves a
// single run; a new run builds a new one.
type Deps struct {
	Tuning *prefabs.Tuning
	RNG    combat.RNG
	Policy *BossPolicy

	drops *combat.WeightedTable[component.PowerUpKind]
}

// NewDeps builds the power-up table from tuning. A nil policy allows every
// boss ability.
func NewDeps(tuning *prefabs.Tuning, rng combat.RNG, policy *BossPolicy) (*Deps, error) {
	if tuning == nil {
		return nil, fmt.Errorf("system: nil tuning")
	}
	if rng == nil {
		return nil, fmt.Errorf("system: nil rng")
	}
	drops, err := PowerUpTable(tuning)
	if err != nil {
		return nil, fmt.Errorf("system: power-up table: %w", err)
	}
	return &Deps{Tuning: tuning, RNG: rng, Policy: policy, drops: drops}, nil
}

// PowerUpTable turns the power-up weights into a weighted table.
func PowerUpTable(tuning *prefabs.Tuning) (*combat.WeightedTable[component.PowerUpKind], error) {
	entries := make([]combat.Weighted[component.PowerUpKind], 0, len(component.PowerUpKinds))
	for _, kind := range component.PowerUpKinds {
		entries = append(entries, combat.Weighted[component.PowerUpKind]{Value: kind, Weight: tuning.PowerUp(kind).Weight})
	}
	return combat.NewWeightedTable(entries...)
}

// Pipeline returns the per-frame systems in their fixed order.
func Pipeline(d *Deps) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewPlayerSystem(d),
		NewEnemySystem(d),
		NewBossSystem(d),
		NewHazardSystem(d),
		NewProjectileSystem(d),
		NewPowerUpSystem(d),
		NewSpawnSystem(d),
		NewCollisionSystem(d),
		NewComboSystem(),
	)
}

// randomX draws a center x that keeps an object of the given width inside
// the arena.
func (d *Deps) randomX(width float64) float64 {
	arena := d.Tuning.Arena.Width
	if width >= arena {
		return arena / 2
	}
	return combat.Uniform(d.RNG, width/2, arena-width/2)
}

func (d *Deps) announce(w *ecs.World, message string) {
	w.Events().Push(ecs.Event{Type: ecs.EventAnnouncement, Message: message, Duration: d.Tuning.Arena.Announcement})
}
