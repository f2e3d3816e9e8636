package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/starblaster/game"
)

// holdDuration is how long one key press counts as held. Terminals report
// presses and autorepeat but never releases.
const holdDuration = 120 * time.Millisecond

type action int

const (
	actionNone action = iota
	actionLeft
	actionRight
	actionFire
	actionSpecial
	actionPause
	actionQuit
	actionConfirm
	actionMenu
)

func actionFor(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyEscape:
		return actionPause
	case tcell.KeyEnter:
		return actionConfirm
	case tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'a':
			return actionLeft
		case 'l', 'd':
			return actionRight
		case ' ':
			return actionFire
		case 's':
			return actionSpecial
		case 'p':
			return actionPause
		case 'q':
			return actionQuit
		case 'm':
			return actionMenu
		}
	}
	return actionNone
}

// keyHold turns key presses into held intents that lapse after holdDuration.
type keyHold struct {
	until map[action]time.Time
}

func newKeyHold() *keyHold {
	return &keyHold{until: make(map[action]time.Time)}
}

func (k *keyHold) press(a action, now time.Time) {
	k.until[a] = now.Add(holdDuration)
	// reversing direction drops the old one at once
	switch a {
	case actionLeft:
		delete(k.until, actionRight)
	case actionRight:
		delete(k.until, actionLeft)
	}
}

func (k *keyHold) held(a action, now time.Time) bool {
	until, ok := k.until[a]
	return ok && now.Before(until)
}

func (k *keyHold) intents(now time.Time) game.Intents {
	return game.Intents{
		MoveLeft:    k.held(actionLeft, now),
		MoveRight:   k.held(actionRight, now),
		Firing:      k.held(actionFire, now),
		Special:     k.held(actionSpecial, now),
		PauseToggle: k.held(actionPause, now),
	}
}
