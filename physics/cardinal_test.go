package physics

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCardinalVectors(t *testing.T) {
	cases := []struct {
		c          Cardinal
		want       cp.Vector
		horizontal bool
		axis       Axis
		opposite   Cardinal
	}{
		{West, cp.Vector{X: -1, Y: 0}, true, AxisHorizontal, East},
		{North, cp.Vector{X: 0, Y: 1}, false, AxisVertical, South},
		{East, cp.Vector{X: 1, Y: 0}, true, AxisHorizontal, West},
		{South, cp.Vector{X: 0, Y: -1}, false, AxisVertical, North},
	}

	for _, c := range cases {
		t.Run(c.c.String(), func(t *testing.T) {
			if got := c.c.Vector(); got != c.want {
				t.Fatalf("vector = %v, want %v", got, c.want)
			}
			if c.c.IsHorizontal() != c.horizontal || c.c.IsVertical() == c.horizontal {
				t.Fatalf("axis predicates wrong for %v", c.c)
			}
			if c.c.Axis() != c.axis {
				t.Fatalf("axis = %v, want %v", c.c.Axis(), c.axis)
			}
			if c.c.Opposite() != c.opposite {
				t.Fatalf("opposite = %v, want %v", c.c.Opposite(), c.opposite)
			}
		})
	}
}

func TestCardinalFromVector(t *testing.T) {
	cases := []struct {
		name string
		v    cp.Vector
		want Cardinal
	}{
		{"west", cp.Vector{X: -2, Y: 0}, West},
		{"east", cp.Vector{X: 0.1, Y: 0}, East},
		{"north", cp.Vector{X: 0, Y: 3}, North},
		{"south", cp.Vector{X: 0, Y: -3}, South},
		{"diagonal_prefers_x", cp.Vector{X: 1, Y: 1}, East},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CardinalFromVector(c.v)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}

	if _, err := CardinalFromVector(cp.Vector{}); !errors.Is(err, ErrZeroDirection) {
		t.Fatalf("zero vector err = %v, want ErrZeroDirection", err)
	}
}

func TestParseCardinal(t *testing.T) {
	for in, want := range map[string]Cardinal{"down": South, "south": South, "left": West, "north": North} {
		got, err := ParseCardinal(in)
		if err != nil || got != want {
			t.Fatalf("ParseCardinal(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseCardinal("sideways"); !errors.Is(err, ErrInvalidCardinal) {
		t.Fatalf("expected ErrInvalidCardinal, got %v", err)
	}
}

func TestAxisCardinal(t *testing.T) {
	if _, ok := AxisCardinal(AxisVertical, 0); ok {
		t.Fatalf("zero direction should not map to a cardinal")
	}
	if c, _ := AxisCardinal(AxisVertical, -1); c != South {
		t.Fatalf("got %v, want south", c)
	}
	if c, _ := AxisCardinal(AxisHorizontal, 1); c != East {
		t.Fatalf("got %v, want east", c)
	}
}
