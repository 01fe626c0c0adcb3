package physics

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

// ShapeLibrary names shared shapes so prefabs can refer to them. Redefining a
// name binds a new instance; handles taken earlier keep the old geometry.
type ShapeLibrary struct {
	shapes *orderedmap.OrderedMap[string, SharedShape]
}

func NewShapeLibrary() *ShapeLibrary {
	return &ShapeLibrary{shapes: orderedmap.NewOrderedMap[string, SharedShape]()}
}

// Define binds name to a new shared instance of s and returns a handle to it.
func (l *ShapeLibrary) Define(name string, s Shape) (SharedShape, error) {
	if l == nil {
		return SharedShape{}, fmt.Errorf("physics: define %q: nil library", name)
	}
	if s == nil {
		return SharedShape{}, fmt.Errorf("physics: define %q: %w", name, ErrNilShape)
	}
	if shared, ok := s.(SharedShape); ok {
		if !shared.Valid() {
			return SharedShape{}, fmt.Errorf("physics: define %q: %w", name, ErrNilShape)
		}
		s = shared.Shape()
	}

	handle := Share(s)
	if old, ok := l.shapes.Get(name); ok {
		old.Release()
	}
	l.shapes.Set(name, handle)
	return handle.Clone(), nil
}

// Lookup returns a new handle to the shape bound to name.
func (l *ShapeLibrary) Lookup(name string) (SharedShape, bool) {
	if l == nil {
		return SharedShape{}, false
	}
	s, ok := l.shapes.Get(name)
	if !ok {
		return SharedShape{}, false
	}
	return s.Clone(), true
}

// Names returns the bound names in definition order.
func (l *ShapeLibrary) Names() []string {
	if l == nil {
		return nil
	}
	return l.shapes.Keys()
}

func (l *ShapeLibrary) Len() int {
	if l == nil {
		return 0
	}
	return l.shapes.Len()
}
