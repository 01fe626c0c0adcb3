package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/physics"
)

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventCollision = "collision"

// CollisionEvent is emitted by the movement integrator when an actor's next
// unit step along Axis would overlap a solid. Box is the solid's box at the
// moment of contact.
type CollisionEvent struct {
	Entity    Entity
	Solid     Entity
	Axis      physics.Axis
	Direction physics.Cardinal
	Box       cp.BB
}

// EventQueue is a simple FIFO queue. The world clears it after every update,
// so events never outlive the tick that produced them.
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

// PushCollision adds a collision event.
func (q *EventQueue) PushCollision(evt CollisionEvent) {
	q.Push(Event{Type: EventCollision, Data: evt})
}

// Peek returns the queued events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

// EventsOf returns the queued payloads of type T in push order.
func EventsOf[T any](q *EventQueue) []T {
	var out []T
	for _, evt := range q.Peek() {
		if data, ok := evt.Data.(T); ok {
			out = append(out, data)
		}
	}
	return out
}
