package physics

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func mustAABB(t *testing.T, hx, hy float64) AABB {
	t.Helper()
	a, err := NewAABB(cp.Vector{X: hx, Y: hy})
	if err != nil {
		t.Fatalf("NewAABB: %v", err)
	}
	return a
}

func TestNewAABBRejectsDegenerateSize(t *testing.T) {
	for _, half := range []cp.Vector{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: -1, Y: 2}} {
		if _, err := NewAABB(half); !errors.Is(err, ErrInvalidHalfSize) {
			t.Fatalf("NewAABB(%v) err = %v, want ErrInvalidHalfSize", half, err)
		}
	}
}

func TestAABBCollides(t *testing.T) {
	actor := mustAABB(t, 4, 4)
	origin := cp.Vector{}

	cases := []struct {
		name string
		box  cp.BB
		want bool
	}{
		{"edge_touch", cp.BB{L: 4, B: -4, R: 12, T: 4}, false},
		{"half_unit_overlap", cp.BB{L: 3.5, B: -4, R: 11.5, T: 4}, false},
		{"one_unit_overlap", cp.BB{L: 3, B: -4, R: 11, T: 4}, true},
		{"resting_on_top", cp.BB{L: -20, B: -12, R: 20, T: -4}, false},
		{"inside", cp.BB{L: -1, B: -1, R: 1, T: 1}, true},
		{"far", cp.BB{L: 40, B: 40, R: 50, T: 50}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := actor.Collides(origin, c.box); got != c.want {
				t.Fatalf("Collides = %v, want %v", got, c.want)
			}
		})
	}
}

func TestAABBCollisionSide(t *testing.T) {
	actor := mustAABB(t, 10, 10)
	origin := cp.Vector{}

	cases := []struct {
		name string
		box  cp.BB
		want Cardinal
	}{
		// closest point (5, -1): |x| dominates, x > 0
		{"offset_5_-1_east", cp.BB{L: 5, B: -20, R: 20, T: -1}, East},
		// closest point (-1, 5): |y| dominates, y > 0
		{"offset_-1_5_north", cp.BB{L: -20, B: 5, R: -1, T: 20}, North},
		{"below_south", cp.BB{L: -20, B: -20, R: 20, T: -10}, South},
		{"left_west", cp.BB{L: -20, B: -5, R: -10, T: 5}, West},
		{"tie_goes_horizontal", cp.BB{L: 3, B: -20, R: 20, T: -3}, East},
		{"negative_tie_goes_west", cp.BB{L: -20, B: -20, R: -3, T: -3}, West},
		{"center_inside_is_east", cp.BB{L: -1, B: -1, R: 1, T: 1}, East},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := actor.CollisionSide(origin, c.box)
			if !ok {
				t.Fatalf("expected a side")
			}
			if got != c.want {
				t.Fatalf("side = %v, want %v", got, c.want)
			}
		})
	}

	if _, ok := actor.CollisionSide(origin, cp.BB{L: 11, B: 0, R: 12, T: 1}); ok {
		t.Fatalf("expected no side for a disjoint box")
	}
}

func TestAABBBoundsFollowsPosition(t *testing.T) {
	a := mustAABB(t, 2, 3)
	got := a.Bounds(cp.Vector{X: 10, Y: 20})
	want := cp.BB{L: 8, B: 17, R: 12, T: 23}
	if got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
}
