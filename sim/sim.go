// Package sim wires a level, the shape library and the physics systems into
// a world that steps one fixed tick at a time.
package sim

import (
	"fmt"

	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/entity"
	"github.com/milk9111/solidstep/ecs/system"
	"github.com/milk9111/solidstep/levels"
	"github.com/milk9111/solidstep/physics"
	"github.com/milk9111/solidstep/prefabs"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Level string
	// TPS overrides physics.yaml when positive.
	TPS int
	// Broadphase overrides physics.yaml when set.
	Broadphase *bool
	Log        logrus.FieldLogger
	// Input runs first every tick, e.g. a keyboard poller.
	Input ecs.System
}

type Sim struct {
	opts Options
	log  logrus.FieldLogger

	World    *ecs.World
	Shapes   *physics.ShapeLibrary
	Spec     prefabs.PhysicsSpec
	Contacts *system.ContactRecorder

	movement *system.MovementSystem
	response *system.CollisionResponseSystem
}

func New(opts Options) (*Sim, error) {
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.Level = logrus.WarnLevel
		log = l
	}

	spec, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		return nil, err
	}
	spec = applyOverrides(spec, opts)

	shapes, err := prefabs.BuildShapeLibrary(spec)
	if err != nil {
		return nil, err
	}

	s := &Sim{opts: opts, log: log, Shapes: shapes, Spec: spec}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func applyOverrides(spec prefabs.PhysicsSpec, opts Options) prefabs.PhysicsSpec {
	if opts.TPS > 0 {
		spec.TPS = opts.TPS
	}
	if opts.Broadphase != nil {
		spec.Broadphase = *opts.Broadphase
	}
	return spec
}

// Reset rebuilds the world from the level file with fresh systems. The old
// world is destroyed only once the new one loaded.
func (s *Sim) Reset() error {
	lvl, err := levels.Load(s.opts.Level)
	if err != nil {
		return fmt.Errorf("sim: load level %s: %w", s.opts.Level, err)
	}

	w := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(w, s.Shapes, lvl); err != nil {
		return fmt.Errorf("sim: load level %s: %w", s.opts.Level, err)
	}

	clock := s.Clock()
	s.movement = system.NewMovementSystem(clock, system.WithBroadphase(s.Spec.Broadphase))
	s.response = system.NewCollisionResponseSystem(s.log.WithField("system", "collision_response"), prefabs.LoadScript)
	s.Contacts = system.NewContactRecorder()

	w.AddSystem(s.opts.Input)
	w.AddSystem(system.NewPlayerControllerSystem(clock))
	w.AddSystem(s.movement)
	w.AddSystem(system.NewGroundingSystem())
	w.AddSystem(s.response)
	w.AddSystem(s.Contacts)
	if s.World != nil {
		s.World.DestroyAll()
	}
	s.World = w

	s.log.WithFields(logrus.Fields{
		"level":      s.opts.Level,
		"entities":   len(w.Entities()),
		"tps":        s.Spec.TPS,
		"broadphase": s.Spec.Broadphase,
	}).Info("level loaded")
	return nil
}

func (s *Sim) Clock() system.FixedTimestep {
	return system.FixedTimestep{TPS: s.Spec.TPS}
}

// Step advances the world one tick.
func (s *Sim) Step() {
	s.World.Update()
}

func (s *Sim) Hash() uint64 {
	return system.StateHash(s.World)
}

// Reload applies an edited prefab file. Shape edits rebind library colliders
// to fresh instances; script edits drop the compiled response scripts.
func (s *Sim) Reload(change prefabs.Change) error {
	log := s.log.WithField("file", change.Path)
	switch change.Kind {
	case prefabs.ChangeScript:
		s.response.Invalidate()
		log.Info("response scripts reloaded")
	case prefabs.ChangeSpec:
		spec, err := prefabs.LoadPhysicsSpec()
		if err != nil {
			return err
		}
		spec = applyOverrides(spec, s.opts)
		if err := prefabs.DefineShapes(s.Shapes, spec); err != nil {
			return err
		}
		rebound := entity.RebindColliders(s.World, s.Shapes)
		s.movement.SetBroadphase(spec.Broadphase)
		s.Spec.Broadphase = spec.Broadphase
		log.WithField("rebound", rebound).Info("shapes reloaded")
	}
	return nil
}
