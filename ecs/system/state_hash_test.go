package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/ecs"
)

func hashRun(t *testing.T, ticks int) uint64 {
	t.Helper()
	w := ecs.NewWorld()
	addSolid(t, w, 0, -10, 100, 10)
	addSolid(t, w, 60, 20, 4, 40)
	addActor(t, w, mustBox(t, 4, 8), cp.Vector{Y: 30}, cp.Vector{X: 90, Y: -120})
	addActor(t, w, mustBox(t, 2, 2), cp.Vector{X: -20, Y: 12}, cp.Vector{X: -33.3, Y: 7})

	w.AddSystem(NewMovementSystem(FixedTimestep{TPS: 60}))
	w.AddSystem(NewGroundingSystem())
	w.AddSystem(NewCollisionResponseSystem(nil, nil))
	for i := 0; i < ticks; i++ {
		w.Update()
	}
	return StateHash(w)
}

func TestStateHashDeterministic(t *testing.T) {
	a := hashRun(t, 90)
	b := hashRun(t, 90)
	if a != b {
		t.Fatalf("hashes differ: %x vs %x", a, b)
	}
	if c := hashRun(t, 10); c == a {
		t.Fatalf("hash did not change with state")
	}
}

func TestStateHashEmptyWorld(t *testing.T) {
	if StateHash(ecs.NewWorld()) != StateHash(nil) {
		t.Fatalf("empty world and nil world should hash equal")
	}
}
