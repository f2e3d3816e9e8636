package system

import (
	"testing"

	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/entity"
	"github.com/milk9111/starblaster/prefabs"
	"github.com/stretchr/testify/require"
)

// constRNG always returns the same draw. 0.99 never passes a drop or
// special-spawn roll.
type constRNG float64

func (r constRNG) Float64() float64 { return float64(r) }

type fixture struct {
	w      *ecs.World
	d      *Deps
	sess   *component.Session
	player ecs.Entity
}

func newFixture(t *testing.T, kind component.PlayerKind) *fixture {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)
	d, err := NewDeps(tuning, constRNG(0.99), nil)
	require.NoError(t, err)

	w := ecs.NewWorld()
	_, err = entity.NewSession(w, tuning, 0)
	require.NoError(t, err)
	p, err := entity.NewPlayer(w, tuning, kind, 0)
	require.NoError(t, err)

	sess, ok := sessionOf(w)
	require.True(t, ok)
	return &fixture{w: w, d: d, sess: sess, player: p}
}

func (f *fixture) playerState(t *testing.T) *component.Player {
	t.Helper()
	p, ok := ecs.Get(f.w, f.player, component.PlayerComponent.Kind())
	require.True(t, ok)
	return p
}

func (f *fixture) playerPos(t *testing.T) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func (f *fixture) input(t *testing.T) *component.Input {
	t.Helper()
	in, ok := ecs.Get(f.w, f.player, component.InputComponent.Kind())
	require.True(t, ok)
	return in
}

func (f *fixture) enemy(t *testing.T, kind component.EnemyKind, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(f.w, f.d.Tuning, kind, x, y, f.sess.Now)
	require.NoError(t, err)
	return e
}

func (f *fixture) health(t *testing.T, e ecs.Entity) float64 {
	t.Helper()
	enemy, ok := ecs.Get(f.w, e, component.EnemyComponent.Kind())
	require.True(t, ok)
	return enemy.Health.Current
}

func (f *fixture) shot(t *testing.T, x, y float64, opts entity.ShotOptions) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayerShot(f.w, f.d.Tuning, x, y, opts)
	require.NoError(t, err)
	return e
}

func eventsOf(events []ecs.Event, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
