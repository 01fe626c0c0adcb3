package physics

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func probeAndBody(t *testing.T, probeFirst bool) Custom {
	t.Helper()
	ray, err := NewSharedRayCast(East, 10)
	if err != nil {
		t.Fatalf("NewSharedRayCast: %v", err)
	}
	body, err := NewSharedAABB(cp.Vector{X: 2, Y: 2})
	if err != nil {
		t.Fatalf("NewSharedAABB: %v", err)
	}
	probe := Part{Shape: ray, Offset: cp.Vector{X: 0, Y: -2}}
	hull := Part{Shape: body}
	parts := []Part{hull, probe}
	if probeFirst {
		parts = []Part{probe, hull}
	}
	c, err := NewCustom(parts...)
	if err != nil {
		t.Fatalf("NewCustom: %v", err)
	}
	return c
}

func TestCustomFirstPartDecidesSide(t *testing.T) {
	// The body sees this box below it, the probe hits it going east.
	box := cp.BB{L: -1, B: -6, R: 6, T: -1}

	side, ok := probeAndBody(t, true).CollisionSide(cp.Vector{}, box)
	if !ok || side != East {
		t.Fatalf("probe first: side = %v, %v; want east", side, ok)
	}
	side, ok = probeAndBody(t, false).CollisionSide(cp.Vector{}, box)
	if !ok || side != South {
		t.Fatalf("body first: side = %v, %v; want south", side, ok)
	}
}

func TestCustomCollidesIsAnyPart(t *testing.T) {
	c := probeAndBody(t, false)
	onlyProbe := cp.BB{L: 8, B: -3, R: 9, T: -1}
	if !c.Collides(cp.Vector{}, onlyProbe) {
		t.Fatalf("expected the probe part to report overlap")
	}
	if c.Collides(cp.Vector{X: 0, Y: 20}, onlyProbe) {
		t.Fatalf("expected no overlap once moved away")
	}
}

func TestCustomBoundsMergesParts(t *testing.T) {
	c := probeAndBody(t, false)
	got := c.Bounds(cp.Vector{})
	want := cp.BB{L: -2, B: -2, R: 10, T: 2}
	if got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
}

func TestNewCustomErrors(t *testing.T) {
	if _, err := NewCustom(); !errors.Is(err, ErrEmptyComposite) {
		t.Fatalf("empty err = %v", err)
	}
	if _, err := NewCustom(Part{}); !errors.Is(err, ErrNilShape) {
		t.Fatalf("nil part err = %v", err)
	}
}

func TestCustomPartsAreCopied(t *testing.T) {
	c := probeAndBody(t, false)
	parts := c.Parts()
	parts[0].Offset = cp.Vector{X: 100, Y: 100}
	if c.Parts()[0].Offset != (cp.Vector{}) {
		t.Fatalf("mutating Parts() leaked into the composite")
	}
}
