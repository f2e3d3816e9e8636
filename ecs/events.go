package ecs

// EventType names what happened in a frame.
type EventType string

const (
	EventSpawn        EventType = "spawn"
	EventDamage       EventType = "damage"
	EventKill         EventType = "kill"
	EventScore        EventType = "score"
	EventPickup       EventType = "pickup"
	EventAbility      EventType = "ability"
	EventCombo        EventType = "combo"
	EventAnnouncement EventType = "announcement"
	EventGameOver     EventType = "game_over"
)

// Event is a frame event for the presentation layer. Key is the asset or
// ability key of the subject, Value carries the amount (damage dealt, score
// gained, combo level) and Message/Duration are used by announcements.
type Event struct {
	Type     EventType
	Entity   Entity
	Key      string
	Value    float64
	Message  string
	Duration float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of undrained events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
