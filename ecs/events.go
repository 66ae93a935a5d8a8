package ecs

import "github.com/jakecoffman/cp"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// EventCollision is published for every resolved body-body impulse.
const EventCollision = "collision"

// CollisionEvent describes one resolved body-body impulse.
type CollisionEvent struct {
	A, B   Entity
	Point  cp.Vector
	Impact float64
}

// EventQueue is a simple FIFO queue. It lives for one tick; the scheduler
// flushes it after the last system ran.
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

// Of returns the queued events of the given type without consuming them.
func (q *EventQueue) Of(typ string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
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

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
