package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// RayCast is a directional probe starting at its position.
type RayCast struct {
	Direction Cardinal
	Length    float64
}

func NewRayCast(dir Cardinal, length float64) (RayCast, error) {
	if !dir.Valid() {
		return RayCast{}, fmt.Errorf("physics: new ray cast: %w", ErrInvalidCardinal)
	}
	if !(length > 0) {
		return RayCast{}, fmt.Errorf("physics: new ray cast length %v: %w", length, ErrZeroLengthRay)
	}
	return RayCast{Direction: dir, Length: length}, nil
}

// NewRayCastFromVector builds a ray pointing along the dominant axis of dir.
func NewRayCastFromVector(dir cp.Vector, length float64) (RayCast, error) {
	c, err := CardinalFromVector(dir)
	if err != nil {
		return RayCast{}, fmt.Errorf("physics: new ray cast: %w", err)
	}
	return NewRayCast(c, length)
}

func (r RayCast) End(pos cp.Vector) cp.Vector {
	return pos.Add(r.Direction.Vector().Mult(r.Length))
}

// Collides uses a ray one unit shorter than Length so the probe does not
// report contact a step before reaching the surface. Rays shorter than one
// unit have no probe left and never collide.
func (r RayCast) Collides(pos cp.Vector, box cp.BB) bool {
	reach := r.Length - 1
	if reach < 0 {
		return false
	}
	end := pos.Add(r.Direction.Vector().Mult(reach))
	return box.IntersectsSegment(pos, end)
}

// CollisionSide is always the ray's own direction.
func (r RayCast) CollisionSide(pos cp.Vector, box cp.BB) (Cardinal, bool) {
	if !box.IntersectsSegment(pos, r.End(pos)) {
		return 0, false
	}
	return r.Direction, true
}

// Bounds covers the full ray from pos to End.
func (r RayCast) Bounds(pos cp.Vector) cp.BB {
	return cp.BB{L: pos.X, B: pos.Y, R: pos.X, T: pos.Y}.Expand(r.End(pos))
}

func (r RayCast) Kind() ShapeKind { return KindRay }

func (RayCast) sealed() {}
