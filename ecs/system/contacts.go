package system

import "github.com/milk9111/solidstep/ecs"

// ContactRecorder keeps the collision events of the latest tick so they can
// be drawn after the world has flushed its queue. Schedule it last.
type ContactRecorder struct {
	events []ecs.CollisionEvent
}

func NewContactRecorder() *ContactRecorder {
	return &ContactRecorder{}
}

func (r *ContactRecorder) Update(w *ecs.World) {
	if r == nil || w == nil {
		return
	}
	r.events = append(r.events[:0], ecs.EventsOf[ecs.CollisionEvent](w.Events())...)
}

func (r *ContactRecorder) Events() []ecs.CollisionEvent {
	if r == nil {
		return nil
	}
	return r.events
}
