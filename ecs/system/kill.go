package system

import (
	"fmt"

	"github.com/milk9111/starblaster/combat"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/entity"
)

// killEnemy credits the player for destroying an enemy: score at the current
// multiplier, a combo step, a drop roll and the cube split. The enemy is
// queued, so later passes in the same category skip it.
func (d *Deps) killEnemy(w *ecs.World, sess *component.Session, e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
	if !ecs.IsAlive(w, e) {
		return
	}
	ecs.QueueDestroy(w, e)

	gained := sess.AddScore(enemy.ScoreValue())
	sess.Kills++
	w.Events().Push(ecs.Event{Type: ecs.EventKill, Entity: e, Key: enemy.Key(), Value: float64(gained)})
	w.Events().Push(ecs.Event{Type: ecs.EventScore, Entity: e, Value: float64(gained)})

	if sess.Combo.Increment(sess.Now) {
		w.Events().Push(ecs.Event{Type: ecs.EventCombo, Value: float64(sess.Combo.Level)})
		d.announce(w, fmt.Sprintf("Combo x%d!", sess.Combo.Level))
	}

	if combat.Chance(d.RNG, d.Tuning.Arena.DropChance) {
		d.dropPowerUp(w, t.X, t.Y)
	}

	if enemy.Kind == component.SplittingCube {
		d.split(w, sess, enemy, t)
	}
}

func (d *Deps) dropPowerUp(w *ecs.World, x, y float64) {
	_, _ = entity.NewPowerUp(w, d.Tuning, d.drops.Pick(d.RNG), x, y)
}

// split replaces a cube larger than the threshold with two half-size cubes.
func (d *Deps) split(w *ecs.World, sess *component.Session, cube *component.Enemy, t *component.Transform) {
	rule := d.Tuning.Arena.Split
	if cube.Size <= rule.Threshold {
		return
	}
	half := cube.Size / 2
	for _, dx := range []float64{-rule.Offset, rule.Offset} {
		_, _ = entity.NewSplittingCube(w, d.Tuning, half, t.X+dx, t.Y, sess.Now)
	}
}
