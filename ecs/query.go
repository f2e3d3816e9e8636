package ecs

import "github.com/milk9111/starblaster/ecs/component"

// Query returns the live entities owning kind, in storage order.
func Query[T any](w *World, kind component.ComponentKind[T]) []Entity {
	var out []Entity
	ForEach(w, kind, func(e Entity, _ *T) { out = append(out, e) })
	return out
}

// Singleton returns the value of the first entity owning kind. Used for
// world-wide state such as the session record.
func Singleton[T any](w *World, kind component.ComponentKind[T]) (*T, bool) {
	e, ok := First(w, kind)
	if !ok {
		return nil, false
	}
	return Get(w, e, kind)
}
