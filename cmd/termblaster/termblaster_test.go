package main

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/starblaster/game"
	"github.com/milk9111/starblaster/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionFor(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want action
	}{
		{"arrow_left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), actionLeft},
		{"vi_right", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), actionRight},
		{"space_fires", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), actionFire},
		{"special", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), actionSpecial},
		{"escape_pauses", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), actionPause},
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), actionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), actionNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, actionFor(c.ev))
		})
	}
}

func TestKeyHoldLapses(t *testing.T) {
	k := newKeyHold()
	start := time.Unix(0, 0)

	k.press(actionLeft, start)
	k.press(actionFire, start)
	assert.Equal(t, game.Intents{MoveLeft: true, Firing: true}, k.intents(start.Add(100*time.Millisecond)))
	assert.Equal(t, game.Intents{}, k.intents(start.Add(holdDuration)))

	k.press(actionRight, start.Add(50*time.Millisecond))
	in := k.intents(start.Add(60 * time.Millisecond))
	assert.False(t, in.MoveLeft)
	assert.True(t, in.MoveRight)
}

func TestViewportScaling(t *testing.T) {
	vp := viewport{arenaW: 1280, arenaH: 720, cols: 128, rows: 74}

	col, row := vp.cell(0, 0)
	assert.Equal(t, 0, col)
	assert.Equal(t, hudRows, row)

	col, row = vp.cell(640, 360)
	assert.Equal(t, 64, col)
	assert.Equal(t, hudRows+36, row)

	x0, y0, x1, y1 := vp.span(game.EntitySnapshot{X: 640, Y: 360, Width: 5, Height: 5})
	assert.Equal(t, 1, x1-x0)
	assert.Equal(t, 1, y1-y0)

	col, row = viewport{}.cell(10, 10)
	assert.Equal(t, -1, col)
	assert.Equal(t, -1, row)
}

func TestGlyphs(t *testing.T) {
	assert.Equal(t, 'A', glyphFor("player.tank"))
	assert.Equal(t, 'W', glyphFor("boss.hive_mind"))
	assert.Equal(t, '!', glyphFor("projectile.missile"))
	assert.Equal(t, '@', glyphFor("hazard.black_hole"))
	assert.Equal(t, '?', glyphFor("mystery"))
}

type recordingStore struct {
	closed int
}

func (s *recordingStore) Load() ([]scores.Entry, error)              { return nil, nil }
func (s *recordingStore) Submit(scores.Entry) ([]scores.Entry, error) { return nil, nil }
func (s *recordingStore) Close() error {
	s.closed++
	return nil
}

func TestNewAppReleasesStoreWhenScreenFails(t *testing.T) {
	store := &recordingStore{}
	prevScreen, prevStore := newScreen, openStore
	t.Cleanup(func() { newScreen, openStore = prevScreen, prevStore })

	newScreen = func() (tcell.Screen, error) { return nil, errors.New("no tty") }
	openStore = func(string, string) (scores.Store, error) { return store, nil }

	a, err := newApp(1, "ace", "sqlite", "", false, -1)
	require.Error(t, err)
	assert.Nil(t, a)
	assert.ErrorContains(t, err, "no tty")
	assert.Equal(t, 1, store.closed)
}
