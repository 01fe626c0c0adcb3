package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// ShapeKind tags the concrete variant behind a Shape.
type ShapeKind uint8

const (
	KindAABB ShapeKind = iota + 1
	KindRay
	KindCustom
)

func (k ShapeKind) String() string {
	switch k {
	case KindAABB:
		return "aabb"
	case KindRay:
		return "ray"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Shape is a geometric predicate placed at a position supplied by the caller.
// The variant set is closed: AABB, RayCast, Custom and the SharedShape handle
// wrapping one of them.
type Shape interface {
	// Collides reports whether the shape placed at pos overlaps box.
	Collides(pos cp.Vector, box cp.BB) bool
	// CollisionSide reports the face of box hit by the shape placed at pos.
	CollisionSide(pos cp.Vector, box cp.BB) (Cardinal, bool)
	// Bounds returns the box covered by the shape placed at pos.
	Bounds(pos cp.Vector) cp.BB
	Kind() ShapeKind

	sealed()
}

// Shrink erodes bb by amount on every side.
func Shrink(bb cp.BB, amount float64) cp.BB {
	return cp.BB{
		L: bb.L + amount,
		B: bb.B + amount,
		R: bb.R - amount,
		T: bb.T - amount,
	}
}
