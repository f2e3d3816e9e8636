package system

import (
	"github.com/milk9111/starblaster/ecs"
)

// ComboSystem expires a streak once the kill window has passed.
type ComboSystem struct{}

func NewComboSystem() *ComboSystem {
	return &ComboSystem{}
}

func (s *ComboSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess, ok := sessionOf(w)
	if !ok {
		return
	}
	if sess.Combo.Tick(sess.Now) {
		w.Events().Push(ecs.Event{Type: ecs.EventCombo, Key: "expired", Value: float64(sess.Combo.Level)})
	}
}
