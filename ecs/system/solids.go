package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
)

// solidBox is a solid frozen for the duration of a tick.
type solidBox struct {
	entity ecs.Entity
	box    cp.BB
}

// snapshotSolids collects every solid's box in ascending entity id order.
func snapshotSolids(w *ecs.World) []solidBox {
	ents := w.Query(
		component.SolidComponent.Kind(),
		component.ColliderComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	out := make([]solidBox, 0, len(ents))
	for _, e := range ents {
		col, ok := ecs.Get(w, e, component.ColliderComponent)
		if !ok || !col.Shape.Valid() {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		out = append(out, solidBox{entity: e, box: col.Shape.Bounds(t.Vector())})
	}
	return out
}
