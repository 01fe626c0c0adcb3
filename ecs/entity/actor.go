package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/physics"
)

// NewActor places a moving body that stops on solids and has its velocity
// zeroed along the blocked axis. It takes ownership of the shape handle,
// releasing it on failure.
func NewActor(w *ecs.World, shape physics.SharedShape, pos, vel cp.Vector) (ecs.Entity, error) {
	if !shape.Valid() {
		return 0, fmt.Errorf("actor: %w", physics.ErrNilShape)
	}
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.ColliderComponent, component.Collider{Shape: shape}); err != nil {
		w.DestroyEntity(e)
		shape.Release()
		return 0, fmt.Errorf("actor: %w", err)
	}
	adds := []func() error{
		func() error { return ecs.Add(w, e, component.ActorComponent, component.Actor{}) },
		func() error { return SetEntityTransform(w, e, pos.X, pos.Y) },
		func() error { return ecs.Add(w, e, component.VelocityComponent, component.Velocity{Value: vel}) },
		func() error {
			return ecs.Add(w, e, component.CollisionResponseComponent, component.CollisionResponse{})
		},
	}
	for _, add := range adds {
		if err := add(); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("actor: %w", err)
		}
	}
	return e, nil
}

// NewActorFromLibrary binds the actor's collider to a named library shape so
// hot reloads can rebind it.
func NewActorFromLibrary(w *ecs.World, shapes *physics.ShapeLibrary, name string, pos, vel cp.Vector) (ecs.Entity, error) {
	shape, ok := shapes.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("actor: %w: %q", ErrUnknownShape, name)
	}
	e, err := NewActor(w, shape, pos, vel)
	if err != nil {
		return 0, err
	}
	return e, ecs.Add(w, e, component.ColliderComponent, component.Collider{Shape: shape, ShapeName: name})
}
