package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/physics"
)

// MovementSystem integrates actor velocities against solids in whole-unit
// steps. Every step is tested before it is committed, so an actor cannot pass
// through a solid regardless of speed.
type MovementSystem struct {
	clock      TickSource
	broadphase bool
}

type MovementOption func(*MovementSystem)

// WithBroadphase limits each axis to the solids touching the swept bounds of
// the move before stepping. The outcome is identical to the plain path.
func WithBroadphase(enabled bool) MovementOption {
	return func(m *MovementSystem) {
		m.broadphase = enabled
	}
}

func NewMovementSystem(clock TickSource, opts ...MovementOption) *MovementSystem {
	m := &MovementSystem{clock: clock}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MovementSystem) SetBroadphase(enabled bool) {
	if m == nil {
		return
	}
	m.broadphase = enabled
}

func (m *MovementSystem) Update(w *ecs.World) {
	if m == nil || w == nil || m.clock == nil {
		return
	}

	dt := m.clock.TickDuration()
	solids := snapshotSolids(w)

	actors := w.Query(
		component.ActorComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.ColliderComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	for _, e := range actors {
		vel, ok := ecs.Get(w, e, component.VelocityComponent)
		if !ok {
			continue
		}
		col, ok := ecs.Get(w, e, component.ColliderComponent)
		if !ok || !col.Shape.Valid() {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		stepsX, stepsY := accumulate(&vel, dt)
		pos := t.Vector()
		pos = m.moveAxis(w, e, col.Shape, pos, physics.AxisHorizontal, stepsX, solids)
		pos = m.moveAxis(w, e, col.Shape, pos, physics.AxisVertical, stepsY, solids)

		t.X, t.Y = pos.X, pos.Y
		writeBack(w, e, component.TransformComponent, t, "movement system: update transform")
		writeBack(w, e, component.VelocityComponent, vel, "movement system: update velocity")
	}
}

// accumulate adds this tick's motion to the remainder and takes out the whole
// units, truncating toward zero. What stays behind is strictly inside (-1, 1).
func accumulate(vel *component.Velocity, dt float64) (int, int) {
	vel.Remainder = vel.Remainder.Add(vel.Value.Mult(dt))
	stepsX := math.Trunc(vel.Remainder.X)
	stepsY := math.Trunc(vel.Remainder.Y)
	vel.Remainder.X -= stepsX
	vel.Remainder.Y -= stepsY
	return int(stepsX), int(stepsY)
}

// moveAxis advances pos one unit at a time along axis. The first solid (in
// ascending entity order) overlapping a tentative step stops the axis: the
// step is not committed, one event is pushed and the remaining steps are
// dropped.
func (m *MovementSystem) moveAxis(w *ecs.World, e ecs.Entity, shape physics.SharedShape, pos cp.Vector, axis physics.Axis, steps int, solids []solidBox) cp.Vector {
	if steps == 0 {
		return pos
	}

	dir := 1
	if steps < 0 {
		dir = -1
	}
	side, _ := physics.AxisCardinal(axis, float64(dir))
	unit := side.Vector()

	candidates := solids
	if m.broadphase {
		candidates = sweptCandidates(shape, pos, unit.Mult(float64(steps)), solids)
	}

	for steps != 0 {
		next := pos.Add(unit)
		if hit, ok := firstOverlap(e, shape, next, candidates); ok {
			w.Events().PushCollision(ecs.CollisionEvent{
				Entity:    e,
				Solid:     hit.entity,
				Axis:      axis,
				Direction: side,
				Box:       hit.box,
			})
			return pos
		}
		pos = next
		steps -= dir
	}
	return pos
}

func firstOverlap(self ecs.Entity, shape physics.Shape, pos cp.Vector, solids []solidBox) (solidBox, bool) {
	for _, s := range solids {
		if s.entity == self {
			continue
		}
		if shape.Collides(pos, s.box) {
			return s, true
		}
	}
	return solidBox{}, false
}

// sweptCandidates keeps the solids touching the bounds swept by shape from
// pos to pos+move. Any solid a unit step could overlap is among them.
func sweptCandidates(shape physics.Shape, pos, move cp.Vector, solids []solidBox) []solidBox {
	swept := shape.Bounds(pos).Merge(shape.Bounds(pos.Add(move)))
	var out []solidBox
	for _, s := range solids {
		if swept.Intersects(s.box) {
			out = append(out, s)
		}
	}
	return out
}
