package physics

import (
	"sync/atomic"

	"github.com/jakecoffman/cp"
)

type sharedShape struct {
	shape Shape
	refs  atomic.Int64
}

// SharedShape is a read-only handle to one shape instance. Copies made with
// Clone point at the same geometry; the geometry itself never changes.
type SharedShape struct {
	ref *sharedShape
}

// Share wraps s in a new handle holding one reference. Sharing a SharedShape
// returns a clone of it instead of nesting handles.
func Share(s Shape) SharedShape {
	if s == nil {
		return SharedShape{}
	}
	if shared, ok := s.(SharedShape); ok {
		return shared.Clone()
	}
	ref := &sharedShape{shape: s}
	ref.refs.Store(1)
	return SharedShape{ref: ref}
}

func NewSharedAABB(halfSize cp.Vector) (SharedShape, error) {
	a, err := NewAABB(halfSize)
	if err != nil {
		return SharedShape{}, err
	}
	return Share(a), nil
}

func NewSharedRayCast(dir Cardinal, length float64) (SharedShape, error) {
	r, err := NewRayCast(dir, length)
	if err != nil {
		return SharedShape{}, err
	}
	return Share(r), nil
}

func NewSharedCustom(parts ...Part) (SharedShape, error) {
	c, err := NewCustom(parts...)
	if err != nil {
		return SharedShape{}, err
	}
	return Share(c), nil
}

func (s SharedShape) Valid() bool {
	return s.ref != nil && s.ref.shape != nil
}

// Shape returns the wrapped geometry.
func (s SharedShape) Shape() Shape {
	if s.ref == nil {
		return nil
	}
	return s.ref.shape
}

// Clone returns another handle to the same geometry.
func (s SharedShape) Clone() SharedShape {
	if s.ref != nil {
		s.ref.refs.Add(1)
	}
	return s
}

// Release drops one reference. The handle must not be used afterwards.
func (s SharedShape) Release() {
	if s.ref != nil {
		s.ref.refs.Add(-1)
	}
}

// Refs reports how many handles currently hold the geometry.
func (s SharedShape) Refs() int64 {
	if s.ref == nil {
		return 0
	}
	return s.ref.refs.Load()
}

// Same reports whether both handles point at the same instance.
func (s SharedShape) Same(other SharedShape) bool {
	return s.ref != nil && s.ref == other.ref
}

func (s SharedShape) Collides(pos cp.Vector, box cp.BB) bool {
	if !s.Valid() {
		return false
	}
	return s.ref.shape.Collides(pos, box)
}

func (s SharedShape) CollisionSide(pos cp.Vector, box cp.BB) (Cardinal, bool) {
	if !s.Valid() {
		return 0, false
	}
	return s.ref.shape.CollisionSide(pos, box)
}

func (s SharedShape) Bounds(pos cp.Vector) cp.BB {
	if !s.Valid() {
		return cp.BB{L: pos.X, B: pos.Y, R: pos.X, T: pos.Y}
	}
	return s.ref.shape.Bounds(pos)
}

func (s SharedShape) Kind() ShapeKind {
	if !s.Valid() {
		return 0
	}
	return s.ref.shape.Kind()
}

func (SharedShape) sealed() {}
