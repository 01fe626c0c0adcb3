package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/physics"
)

// NewSolid places an immovable box. It takes ownership of the shape handle,
// releasing it on failure; pass a clone when the caller keeps its own
// reference.
func NewSolid(w *ecs.World, shape physics.SharedShape, x, y float64) (ecs.Entity, error) {
	if !shape.Valid() {
		return 0, fmt.Errorf("solid: %w", physics.ErrNilShape)
	}
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.ColliderComponent, component.Collider{Shape: shape}); err != nil {
		w.DestroyEntity(e)
		shape.Release()
		return 0, fmt.Errorf("solid: %w", err)
	}
	if err := ecs.Add(w, e, component.SolidComponent, component.Solid{}); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("solid: %w", err)
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("solid: %w", err)
	}
	return e, nil
}

// NewSolidBox places a solid covering bb.
func NewSolidBox(w *ecs.World, bb cp.BB) (ecs.Entity, error) {
	shape, err := physics.NewSharedAABB(cp.Vector{X: (bb.R - bb.L) / 2, Y: (bb.T - bb.B) / 2})
	if err != nil {
		return 0, fmt.Errorf("solid: %w", err)
	}
	c := bb.Center()
	return NewSolid(w, shape, c.X, c.Y)
}
