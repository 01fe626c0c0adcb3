package system

import (
	"encoding/binary"
	"math"

	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/zeebo/xxh3"
)

// StateHash fingerprints every actor's position, velocity and grounded flag
// in ascending entity order. Two runs fed the same inputs hash equal.
func StateHash(w *ecs.World) uint64 {
	h := xxh3.New()
	if w == nil {
		return h.Sum64()
	}

	var buf [8]byte
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}

	actors := w.Query(component.ActorComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range actors {
		binary.LittleEndian.PutUint64(buf[:], uint64(e))
		_, _ = h.Write(buf[:])

		t, _ := ecs.Get(w, e, component.TransformComponent)
		putFloat(t.X)
		putFloat(t.Y)

		vel, _ := ecs.Get(w, e, component.VelocityComponent)
		putFloat(vel.Value.X)
		putFloat(vel.Value.Y)
		putFloat(vel.Remainder.X)
		putFloat(vel.Remainder.Y)

		actor, _ := ecs.Get(w, e, component.ActorComponent)
		grounded := byte(0)
		if actor.Grounded {
			grounded = 1
		}
		_, _ = h.Write([]byte{grounded})
	}
	return h.Sum64()
}
