package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// AABB is an axis-aligned box centered on its position.
type AABB struct {
	HalfSize cp.Vector
}

func NewAABB(halfSize cp.Vector) (AABB, error) {
	if !(halfSize.X > 0) || !(halfSize.Y > 0) {
		return AABB{}, fmt.Errorf("physics: new aabb %v: %w", halfSize, ErrInvalidHalfSize)
	}
	return AABB{HalfSize: halfSize}, nil
}

func (a AABB) Box(pos cp.Vector) cp.BB {
	return cp.NewBBForExtents(pos, a.HalfSize.X, a.HalfSize.Y)
}

// Collides tests against box eroded by one unit, so boxes sharing an edge do
// not collide.
func (a AABB) Collides(pos cp.Vector, box cp.BB) bool {
	return a.Box(pos).Intersects(Shrink(box, 1))
}

func (a AABB) CollisionSide(pos cp.Vector, box cp.BB) (Cardinal, bool) {
	if !a.Box(pos).Intersects(box) {
		return 0, false
	}

	offset := box.ClampVect(&pos).Sub(pos)
	return sideForOffset(offset), true
}

// sideForOffset classifies the offset from a position to the closest point
// on a box. The vertical check runs first and wins only on a strict majority.
func sideForOffset(offset cp.Vector) Cardinal {
	if math.Abs(offset.Y) > math.Abs(offset.X) {
		if offset.Y > 0 {
			return North
		}
		return South
	}
	if offset.X < 0 {
		return West
	}
	return East
}

func (a AABB) Bounds(pos cp.Vector) cp.BB {
	return a.Box(pos)
}

func (a AABB) Kind() ShapeKind { return KindAABB }

func (AABB) sealed() {}
