package ecs

import "github.com/milk9111/starblaster/ecs/component"

// World owns entities, their component stores, the deferred destroy queue and
// the frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	pending  []Entity
	queued   map[Entity]struct{}
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		queued: make(map[Entity]struct{}),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. Returns
// false if e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	delete(w.queued, e)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid and not queued for
// destruction.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	_, queued := w.queued[e]
	return !queued
}

// QueueDestroy marks e for removal at the next FlushDestroyed. Queued entities
// are skipped by iteration and reported as not alive, so a pass can keep
// walking a collection while removals pile up.
func QueueDestroy(w *World, e Entity) {
	if !IsAlive(w, e) {
		return
	}
	w.queued[e] = struct{}{}
	w.pending = append(w.pending, e)
}

// FlushDestroyed destroys every queued entity and returns how many were removed.
func FlushDestroyed(w *World) int {
	if w == nil || len(w.pending) == 0 {
		return 0
	}
	pending := w.pending
	w.pending = nil
	n := 0
	for _, e := range pending {
		if DestroyEntity(w, e) {
			n++
		}
	}
	return n
}

// Entities returns every live entity, including ones queued for destruction.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
