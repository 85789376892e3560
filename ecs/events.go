package ecs

// EventKind identifies event types.
type EventKind string

const (
	EventLaserFired      EventKind = "laser_fired"
	EventAlienDestroyed  EventKind = "alien_destroyed"
	EventMovementChanged EventKind = "movement_changed"
	EventGameOver        EventKind = "game_over"
)

// Event is emitted by systems during a tick.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
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

// Pending returns the events pushed so far without clearing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
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
