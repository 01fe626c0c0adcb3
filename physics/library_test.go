package physics

import (
	"slices"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestShapeLibraryRebindKeepsOldHolders(t *testing.T) {
	lib := NewShapeLibrary()

	held, err := lib.Define("body", mustAABB(t, 4, 8))
	if err != nil {
		t.Fatalf("Define: %v", err)
	}
	if _, err := lib.Define("probe", RayCast{Direction: South, Length: 2}); err != nil {
		t.Fatalf("Define: %v", err)
	}
	rebound, err := lib.Define("body", mustAABB(t, 6, 8))
	if err != nil {
		t.Fatalf("Define: %v", err)
	}

	if held.Same(rebound) {
		t.Fatalf("redefining must create a new instance")
	}
	if got := held.Shape().(AABB).HalfSize; got != (cp.Vector{X: 4, Y: 8}) {
		t.Fatalf("old holder sees %v, want original geometry", got)
	}
	current, ok := lib.Lookup("body")
	if !ok || !current.Same(rebound) {
		t.Fatalf("lookup should return the rebound instance")
	}
	if want := []string{"body", "probe"}; !slices.Equal(lib.Names(), want) {
		t.Fatalf("names = %v, want %v", lib.Names(), want)
	}
}

func TestShapeLibraryErrors(t *testing.T) {
	lib := NewShapeLibrary()
	if _, err := lib.Define("x", nil); err == nil {
		t.Fatalf("expected error for nil shape")
	}
	if _, err := lib.Define("x", SharedShape{}); err == nil {
		t.Fatalf("expected error for empty handle")
	}
	if _, ok := lib.Lookup("missing"); ok {
		t.Fatalf("lookup of unknown name should fail")
	}
}
