package system

import (
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
)

// writeBack stores v on e at the end of a system's update. The entity was
// live when the system queried it, so a failure panics with the system name.
func writeBack[T any](w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], v T, system string) {
	if err := ecs.Add(w, e, handle, v); err != nil {
		panic(system + ": " + err.Error())
	}
}
