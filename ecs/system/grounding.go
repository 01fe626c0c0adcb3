package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/physics"
)

// GroundingSystem sets Actor.Grounded after movement: an actor is grounded
// when some solid is on its south side and the contact is more than a shared
// corner.
type GroundingSystem struct{}

func NewGroundingSystem() *GroundingSystem {
	return &GroundingSystem{}
}

func (g *GroundingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	solids := snapshotSolids(w)
	actors := w.Query(
		component.ActorComponent.Kind(),
		component.ColliderComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	for _, e := range actors {
		actor, ok := ecs.Get(w, e, component.ActorComponent)
		if !ok {
			continue
		}
		col, ok := ecs.Get(w, e, component.ColliderComponent)
		if !ok {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		actor.Grounded = col.Shape.Valid() && grounded(e, col.Shape, t.Vector(), solids)
		writeBack(w, e, component.ActorComponent, actor, "grounding system: update actor")
	}
}

func grounded(self ecs.Entity, shape physics.Shape, pos cp.Vector, solids []solidBox) bool {
	box := shape.Bounds(pos)
	for _, s := range solids {
		if s.entity == self {
			continue
		}
		side, ok := shape.CollisionSide(pos, s.box)
		if !ok || side != physics.South {
			continue
		}
		// corner-only contact
		if box.R == s.box.L || box.L == s.box.R {
			continue
		}
		return true
	}
	return false
}
