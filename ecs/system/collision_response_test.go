package system

import (
	"errors"
	"io"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/physics"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const bounceScript = `
if side == "north" {
	vy = -5
	ry = 0
} else if axis == "horizontal" {
	vx = -vx * 0.5
	rx = 0
} else {
	vy = 0
	ry = 0
}
`

func scriptLoader(calls *int, scripts map[string]string) ScriptLoader {
	return func(name string) ([]byte, error) {
		*calls++
		src, ok := scripts[name]
		if !ok {
			return nil, errors.New("missing script " + name)
		}
		return []byte(src), nil
	}
}

func responder(t *testing.T, w *ecs.World, script string, vel component.Velocity) ecs.Entity {
	t.Helper()
	e := addActor(t, w, mustBox(t, 4, 4), cp.Vector{}, vel.Value)
	mustAdd(t, ecs.Add(w, e, component.VelocityComponent, vel))
	mustAdd(t, ecs.Add(w, e, component.CollisionResponseComponent, component.CollisionResponse{Script: script}))
	return e
}

func pushHit(w *ecs.World, e ecs.Entity, side physics.Cardinal) {
	w.Events().PushCollision(ecs.CollisionEvent{Entity: e, Axis: side.Axis(), Direction: side})
}

func TestCollisionResponseDefaultStopsAxis(t *testing.T) {
	tests := []struct {
		name string
		side physics.Cardinal
		want component.Velocity
	}{
		{
			name: "horizontal",
			side: physics.East,
			want: component.Velocity{Value: cp.Vector{Y: -7}, Remainder: cp.Vector{Y: -0.25}},
		},
		{
			name: "vertical",
			side: physics.South,
			want: component.Velocity{Value: cp.Vector{X: 3}, Remainder: cp.Vector{X: 0.5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := responder(t, w, "", component.Velocity{
				Value:     cp.Vector{X: 3, Y: -7},
				Remainder: cp.Vector{X: 0.5, Y: -0.25},
			})
			pushHit(w, e, tt.side)

			NewCollisionResponseSystem(nil, nil).Update(w)

			if got := velocity(t, w, e); got != tt.want {
				t.Fatalf("velocity = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCollisionResponseSkipsEntitiesWithoutResponse(t *testing.T) {
	w := ecs.NewWorld()
	vel := cp.Vector{X: 3, Y: -7}
	e := addActor(t, w, mustBox(t, 4, 4), cp.Vector{}, vel)
	pushHit(w, e, physics.East)

	NewCollisionResponseSystem(nil, nil).Update(w)

	if got := velocity(t, w, e).Value; got != vel {
		t.Fatalf("velocity = %v, want %v", got, vel)
	}
}

func TestCollisionResponseNilLoggerDiscardsWarnings(t *testing.T) {
	s := NewCollisionResponseSystem(nil, nil)
	l, ok := s.log.(*logrus.Logger)
	if !ok || l.Out != io.Discard {
		t.Fatalf("default logger = %#v, want a logrus logger writing to io.Discard", s.log)
	}

	w := ecs.NewWorld()
	e := responder(t, w, "missing", component.Velocity{Value: cp.Vector{X: 3, Y: -7}})
	pushHit(w, e, physics.East)
	s.Update(w)

	if got := velocity(t, w, e).Value; got != (cp.Vector{Y: -7}) {
		t.Fatalf("velocity = %v, want default stop", got)
	}
}

func TestCollisionResponseScript(t *testing.T) {
	calls := 0
	s := NewCollisionResponseSystem(nil, scriptLoader(&calls, map[string]string{"bounce": bounceScript}))

	w := ecs.NewWorld()
	e := responder(t, w, "bounce", component.Velocity{
		Value:     cp.Vector{X: 8, Y: 12},
		Remainder: cp.Vector{X: 0.5, Y: 0.5},
	})

	pushHit(w, e, physics.East)
	s.Update(w)
	w.Events().Drain()
	if got := velocity(t, w, e); got.Value != (cp.Vector{X: -4, Y: 12}) || got.Remainder != (cp.Vector{Y: 0.5}) {
		t.Fatalf("after east hit velocity = %+v", got)
	}

	pushHit(w, e, physics.North)
	s.Update(w)
	if got := velocity(t, w, e); got.Value != (cp.Vector{X: -4, Y: -5}) || got.Remainder != (cp.Vector{}) {
		t.Fatalf("after north hit velocity = %+v", got)
	}

	if calls != 1 {
		t.Fatalf("loader calls = %d, want 1", calls)
	}
}

func TestCollisionResponseScriptFailureFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		scripts map[string]string
	}{
		{"missing", map[string]string{}},
		{"compile error", map[string]string{"broken": "if {"}},
		{"runtime error", map[string]string{"broken": `vx = 1 / 0`}},
		{"non-numeric result", map[string]string{"broken": `vx = "fast"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, hook := logtest.NewNullLogger()
			calls := 0
			s := NewCollisionResponseSystem(log, scriptLoader(&calls, tt.scripts))

			w := ecs.NewWorld()
			e := responder(t, w, "broken", component.Velocity{
				Value:     cp.Vector{X: 8, Y: 12},
				Remainder: cp.Vector{X: 0.5},
			})
			pushHit(w, e, physics.West)
			s.Update(w)

			if got := velocity(t, w, e); got.Value != (cp.Vector{Y: 12}) || got.Remainder != (cp.Vector{}) {
				t.Fatalf("velocity = %+v, want horizontal axis stopped", got)
			}
			entry := hook.LastEntry()
			if entry == nil || entry.Level != logrus.WarnLevel {
				t.Fatalf("expected a warning, got %v", hook.AllEntries())
			}
			if entry.Data["script"] != "broken" {
				t.Fatalf("log fields = %v", entry.Data)
			}
		})
	}
}

func TestCollisionResponseInvalidate(t *testing.T) {
	calls := 0
	scripts := map[string]string{"s": `vx = 1`}
	s := NewCollisionResponseSystem(nil, scriptLoader(&calls, scripts))

	w := ecs.NewWorld()
	e := responder(t, w, "s", component.Velocity{})
	pushHit(w, e, physics.East)
	s.Update(w)

	scripts["s"] = `vx = 2`
	s.Invalidate()
	s.Update(w)

	if got := velocity(t, w, e).Value.X; got != 2 {
		t.Fatalf("vx = %v, want 2", got)
	}
	if calls != 2 {
		t.Fatalf("loader calls = %d, want 2", calls)
	}
}
