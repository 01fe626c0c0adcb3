package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Part is one sub-shape of a Custom hull, placed at Offset from the hull's
// position.
type Part struct {
	Shape  SharedShape
	Offset cp.Vector
}

// Custom is an ordered composite of shapes, e.g. a body box plus feet probes.
type Custom struct {
	parts []Part
}

func NewCustom(parts ...Part) (Custom, error) {
	if len(parts) == 0 {
		return Custom{}, ErrEmptyComposite
	}
	copied := make([]Part, len(parts))
	for i, p := range parts {
		if !p.Shape.Valid() {
			return Custom{}, fmt.Errorf("physics: new custom part %d: %w", i, ErrNilShape)
		}
		copied[i] = Part{Shape: p.Shape.Clone(), Offset: p.Offset}
	}
	return Custom{parts: copied}, nil
}

// Parts returns a copy of the parts in declaration order.
func (c Custom) Parts() []Part {
	return append([]Part(nil), c.parts...)
}

func (c Custom) Collides(pos cp.Vector, box cp.BB) bool {
	for _, p := range c.parts {
		if p.Shape.Collides(pos.Add(p.Offset), box) {
			return true
		}
	}
	return false
}

// CollisionSide returns the side reported by the first part that hits.
func (c Custom) CollisionSide(pos cp.Vector, box cp.BB) (Cardinal, bool) {
	for _, p := range c.parts {
		if side, ok := p.Shape.CollisionSide(pos.Add(p.Offset), box); ok {
			return side, true
		}
	}
	return 0, false
}

func (c Custom) Bounds(pos cp.Vector) cp.BB {
	var out cp.BB
	for i, p := range c.parts {
		bb := p.Shape.Bounds(pos.Add(p.Offset))
		if i == 0 {
			out = bb
			continue
		}
		out = out.Merge(bb)
	}
	return out
}

func (c Custom) Kind() ShapeKind { return KindCustom }

func (Custom) sealed() {}
