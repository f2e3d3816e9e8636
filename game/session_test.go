package game

import (
	"math"
	"testing"

	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/entity"
	"github.com/milk9111/starblaster/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constRNG float64

func (r constRNG) Float64() float64 { return float64(r) }

func newTestSession(t *testing.T) *Session {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)
	s, err := NewSession(tuning, nil, constRNG(0.99))
	require.NoError(t, err)
	return s
}

func startRun(t *testing.T, s *Session, index int) {
	t.Helper()
	require.True(t, s.OpenCharacterSelect())
	require.NoError(t, s.SelectArchetype(index))
	require.Equal(t, Running, s.State())
}

func findSnapshot(frame Frame, key string) (EntitySnapshot, bool) {
	for _, e := range frame.Entities {
		if e.Key == key {
			return e, true
		}
	}
	return EntitySnapshot{}, false
}

func TestStateMachine(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, MainMenu, s.State())
	assert.Error(t, s.SelectArchetype(0))
	assert.False(t, s.TogglePause())
	assert.False(t, s.ReturnToMainMenu())

	frame := s.Step(16, Intents{Firing: true})
	assert.Equal(t, MainMenu, frame.State)
	assert.Empty(t, frame.Entities)

	require.True(t, s.OpenCharacterSelect())
	assert.False(t, s.OpenCharacterSelect())
	require.NoError(t, s.SelectArchetype(1))
	assert.Equal(t, Running, s.State())

	assert.True(t, s.TogglePause())
	assert.Equal(t, Paused, s.State())
	assert.True(t, s.ReturnToMainMenu())
	assert.Equal(t, MainMenu, s.State())
	assert.Nil(t, s.World())
}

func TestSelectArchetypeClamps(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{-3, "player.speedster"},
		{0, "player.speedster"},
		{2, "player.glass_cannon"},
		{42, "player.all_rounder"},
	}
	for _, c := range cases {
		s := newTestSession(t)
		startRun(t, s, c.index)
		_, ok := findSnapshot(s.Frame(), c.want)
		assert.True(t, ok, "index %d", c.index)
	}
}

func TestPauseIsEdgeTriggered(t *testing.T) {
	s := newTestSession(t)
	startRun(t, s, 3)

	steps := []struct {
		pause bool
		want  State
	}{
		{true, Paused},
		{true, Paused},
		{false, Paused},
		{true, Running},
		{false, Running},
	}
	for i, step := range steps {
		frame := s.Step(16, Intents{PauseToggle: step.pause})
		assert.Equal(t, step.want, frame.State, "step %d", i)
	}
}

func TestPauseFreezesCooldowns(t *testing.T) {
	s := newTestSession(t)
	startRun(t, s, 3)

	frame := s.Step(100, Intents{Special: true})
	require.True(t, frame.HUD.SpecialActive)
	cooldown := frame.HUD.SpecialCooldown
	assert.InDelta(t, 0.0, cooldown, 1e-9)

	s.TogglePause()
	for i := 0; i < 100; i++ {
		frame = s.Step(250, Intents{Special: true})
	}
	assert.Equal(t, 100.0, s.Now())
	assert.Equal(t, cooldown, frame.HUD.SpecialCooldown)

	s.TogglePause()
	frame = s.Step(250, Intents{})
	assert.Equal(t, 350.0, s.Now())
	assert.InDelta(t, 250.0/20000, frame.HUD.SpecialCooldown, 1e-9)
}

func TestDeltaSanitizing(t *testing.T) {
	cases := []struct {
		dt   float64
		want float64
	}{
		{16, 16},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{-5, 0},
		{1000, 250},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SanitizeDelta(c.dt, DefaultMaxFrame), "dt=%v", c.dt)
	}

	s := newTestSession(t)
	startRun(t, s, 0)
	s.Step(math.NaN(), Intents{})
	s.Step(5000, Intents{})
	assert.Equal(t, 250.0, s.Now())
}

func TestIntentsMovePlayer(t *testing.T) {
	s := newTestSession(t)
	startRun(t, s, 3)

	frame := s.Step(16, Intents{MoveRight: true})
	player, ok := findSnapshot(frame, "player.all_rounder")
	require.True(t, ok)
	assert.Equal(t, 652.0, player.X)
	assert.Equal(t, 100.0, player.Health)
	assert.Equal(t, "All-Rounder", frame.HUD.Archetype)
}

func TestGameOver(t *testing.T) {
	s := newTestSession(t)
	startRun(t, s, 3)
	w := s.World()

	pe, ok := ecs.First(w, component.PlayerComponent.Kind())
	require.True(t, ok)
	p, _ := ecs.Get(w, pe, component.PlayerComponent.Kind())
	p.Health.Set(1)
	sess, _ := ecs.Singleton(w, component.SessionComponent.Kind())
	sess.Score = 120
	_, err := entity.NewEnemyShot(w, s.Tuning(), 640, 620, 50)
	require.NoError(t, err)

	frame := s.Step(16, Intents{})
	assert.Equal(t, GameOver, frame.State)
	assert.Equal(t, 120, s.FinalScore())

	var gameOver []ecs.Event
	for _, e := range frame.Events {
		if e.Type == ecs.EventGameOver {
			gameOver = append(gameOver, e)
		}
	}
	require.Len(t, gameOver, 1)
	assert.Equal(t, 120.0, gameOver[0].Value)

	var messages []string
	for _, a := range frame.Announcements {
		messages = append(messages, a.Message)
	}
	assert.Contains(t, messages, "Game Over")

	// the run is frozen until the player leaves
	before := s.Now()
	s.Step(16, Intents{PauseToggle: true})
	assert.Equal(t, GameOver, s.State())
	assert.Equal(t, before, s.Now())

	require.True(t, s.ReturnToMainMenu())
	assert.Empty(t, s.Step(16, Intents{}).Entities)
}

func TestAnnouncementFade(t *testing.T) {
	b := announcementBoard{defaultDuration: 3000}
	b.add("Combo x2!", 0, 0)
	b.add("", 0, 0)

	cases := []struct {
		now   float64
		count int
		alpha float32
	}{
		{0, 1, 1},
		{1999, 1, 1},
		{2500, 1, 0.5},
		{3000, 0, 0},
	}
	for _, c := range cases {
		active := b.active(c.now)
		require.Len(t, active, c.count, "at %v", c.now)
		if c.count > 0 {
			assert.InDelta(t, c.alpha, active[0].Alpha, 1e-3)
			assert.Equal(t, 3000.0, active[0].Duration)
		}
	}

	b.prune(3000)
	assert.Empty(t, b.items)
}

func TestHUDStatuses(t *testing.T) {
	s := newTestSession(t)
	startRun(t, s, 3)
	w := s.World()
	sess, _ := ecs.Singleton(w, component.SessionComponent.Kind())
	sess.EMPUntil = 10000
	pe, _ := ecs.First(w, component.PlayerComponent.Kind())
	p, _ := ecs.Get(w, pe, component.PlayerComponent.Kind())
	p.Activate(component.RapidFire, 0, 10000)

	frame := s.Step(16, Intents{})
	require.Len(t, frame.HUD.Statuses, 1)
	assert.Equal(t, "EMP", frame.HUD.Statuses[0].Name)
	assert.Equal(t, 10000.0-16, frame.HUD.Statuses[0].Remaining)
	require.Len(t, frame.HUD.Effects, 1)
	assert.Equal(t, "Rapid Fire", frame.HUD.Effects[0].Name)
	assert.Equal(t, 1, frame.HUD.ComboLevel)
	assert.Equal(t, 1.0, frame.HUD.ComboMultiplier)
}

func TestReloadAppliesToNextRun(t *testing.T) {
	s := newTestSession(t)
	before := s.Tuning()

	require.NoError(t, s.Reload(prefabs.Change{Files: []string{"notes.txt"}}))
	assert.Same(t, before, s.Tuning())

	require.NoError(t, s.Reload(prefabs.Change{
		Files:  []string{"prefabs/arena.yaml", "prefabs/scripts/boss_policy.tengo"},
		Tuning: true,
		Policy: true,
	}))
	assert.NotSame(t, before, s.Tuning())
	assert.Equal(t, before.Arena, s.Tuning().Arena)
	assert.NotNil(t, s.policy)
}
