package prefabs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/physics"
)

var (
	ErrUnknownShapeType = errors.New("prefabs: unknown shape type")
	ErrUnknownShape     = errors.New("prefabs: unknown shape")
	ErrUnnamedShape     = errors.New("prefabs: shape has no name")
)

// Build turns the spec into a shape. Custom parts are looked up in lib, so
// they must be declared before the shape using them.
func (s ShapeSpec) Build(lib *physics.ShapeLibrary) (physics.Shape, error) {
	switch strings.ToLower(s.Type) {
	case "aabb", "box", "":
		return physics.NewAABB(cp.Vector{X: s.HalfWidth, Y: s.HalfHeight})
	case "ray":
		dir, err := physics.ParseCardinal(s.Direction)
		if err != nil {
			return nil, err
		}
		return physics.NewRayCast(dir, s.Length)
	case "custom":
		parts := make([]physics.Part, 0, len(s.Parts))
		for _, p := range s.Parts {
			shape, ok := lib.Lookup(p.Shape)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownShape, p.Shape)
			}
			parts = append(parts, physics.Part{Shape: shape, Offset: cp.Vector{X: p.OffsetX, Y: p.OffsetY}})
		}
		custom, err := physics.NewCustom(parts...)
		for _, p := range parts {
			p.Shape.Release()
		}
		return custom, err
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShapeType, s.Type)
	}
}

// DefineShapes (re)defines every shape of spec in lib, in declaration order.
// Redefined names get fresh instances; colliders bound earlier keep theirs.
func DefineShapes(lib *physics.ShapeLibrary, spec PhysicsSpec) error {
	for _, s := range spec.Shapes {
		if s.Name == "" {
			return ErrUnnamedShape
		}
		shape, err := s.Build(lib)
		if err != nil {
			return fmt.Errorf("prefabs: shape %q: %w", s.Name, err)
		}
		handle, err := lib.Define(s.Name, shape)
		if err != nil {
			return fmt.Errorf("prefabs: shape %q: %w", s.Name, err)
		}
		handle.Release()
	}
	return nil
}

func BuildShapeLibrary(spec PhysicsSpec) (*physics.ShapeLibrary, error) {
	lib := physics.NewShapeLibrary()
	if err := DefineShapes(lib, spec); err != nil {
		return nil, err
	}
	return lib, nil
}
