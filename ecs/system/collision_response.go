package system

import (
	"io"

	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/physics"
	"github.com/sirupsen/logrus"
)

// ScriptLoader returns the source of a named response script.
type ScriptLoader func(name string) ([]byte, error)

// CollisionResponseSystem consumes the collision events pushed earlier in the
// tick and adjusts the velocity of entities carrying a CollisionResponse.
// Without a script the blocked axis is zeroed together with its remainder.
type CollisionResponseSystem struct {
	log     logrus.FieldLogger
	load    ScriptLoader
	scripts map[string]*responseScript
}

func NewCollisionResponseSystem(log logrus.FieldLogger, load ScriptLoader) *CollisionResponseSystem {
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	return &CollisionResponseSystem{
		log:     log,
		load:    load,
		scripts: make(map[string]*responseScript),
	}
}

// Invalidate drops compiled scripts so the next event recompiles them.
func (s *CollisionResponseSystem) Invalidate() {
	if s == nil {
		return
	}
	s.scripts = make(map[string]*responseScript)
}

func (s *CollisionResponseSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, evt := range ecs.EventsOf[ecs.CollisionEvent](w.Events()) {
		resp, ok := ecs.Get(w, evt.Entity, component.CollisionResponseComponent)
		if !ok {
			continue
		}
		vel, ok := ecs.Get(w, evt.Entity, component.VelocityComponent)
		if !ok {
			continue
		}

		if !s.applyScript(w, evt, resp.Script, &vel) {
			stopAxis(&vel, evt.Axis)
		}

		if err := ecs.Add(w, evt.Entity, component.VelocityComponent, vel); err != nil {
			s.log.WithError(err).WithField("entity", evt.Entity).Warn("collision response: update velocity")
		}
	}
}

func (s *CollisionResponseSystem) applyScript(w *ecs.World, evt ecs.CollisionEvent, name string, vel *component.Velocity) bool {
	if name == "" {
		return false
	}

	fields := logrus.Fields{"entity": evt.Entity, "script": name}
	rt, err := s.script(name)
	if err != nil {
		s.log.WithError(err).WithFields(fields).Warn("collision response: load script")
		return false
	}

	actor, _ := ecs.Get(w, evt.Entity, component.ActorComponent)
	out, err := rt.run(evt, *vel, actor.Grounded)
	if err != nil {
		s.log.WithError(err).WithFields(fields).Warn("collision response: run script")
		return false
	}
	*vel = out
	return true
}

func (s *CollisionResponseSystem) script(name string) (*responseScript, error) {
	if rt, ok := s.scripts[name]; ok {
		return rt, nil
	}
	if s.load == nil {
		return nil, errNoScriptLoader
	}
	src, err := s.load(name)
	if err != nil {
		return nil, err
	}
	rt, err := compileResponseScript(src)
	if err != nil {
		return nil, err
	}
	s.scripts[name] = rt
	return rt, nil
}

func stopAxis(vel *component.Velocity, axis physics.Axis) {
	if axis == physics.AxisHorizontal {
		vel.ResetX()
		return
	}
	vel.ResetY()
}
