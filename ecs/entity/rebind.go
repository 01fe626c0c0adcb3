package entity

import (
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/physics"
)

// RebindColliders points every collider that came from the library at the
// library's current instance of its shape, releasing the old handle. It
// returns how many colliders changed.
func RebindColliders(w *ecs.World, shapes *physics.ShapeLibrary) int {
	if w == nil || shapes == nil {
		return 0
	}

	changed := 0
	for _, e := range w.Query(component.ColliderComponent.Kind()) {
		col, ok := ecs.Get(w, e, component.ColliderComponent)
		if !ok || col.ShapeName == "" {
			continue
		}
		next, ok := shapes.Lookup(col.ShapeName)
		if !ok {
			continue
		}
		if next.Same(col.Shape) {
			next.Release()
			continue
		}
		col.Shape.Release()
		col.Shape = next
		if err := ecs.Add(w, e, component.ColliderComponent, col); err != nil {
			next.Release()
			continue
		}
		changed++
	}
	return changed
}
