package system

import (
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
)

// PlayerControllerSystem turns Input into velocity for player actors. It only
// writes Velocity.Value; positions are left to MovementSystem.
type PlayerControllerSystem struct {
	clock TickSource
}

func NewPlayerControllerSystem(clock TickSource) *PlayerControllerSystem {
	return &PlayerControllerSystem{clock: clock}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil || p.clock == nil {
		return
	}

	dt := p.clock.TickDuration()
	entities := w.Query(
		component.PlayerControllerComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.ActorComponent.Kind(),
	)
	for _, e := range entities {
		pc, _ := ecs.Get(w, e, component.PlayerControllerComponent)
		input, _ := ecs.Get(w, e, component.InputComponent)
		vel, _ := ecs.Get(w, e, component.VelocityComponent)
		actor, _ := ecs.Get(w, e, component.ActorComponent)

		vel.Value.X = approach(vel.Value.X, input.MoveX*pc.MoveSpeed, pc.Acceleration*dt)
		vel.Value.Y = approach(vel.Value.Y, -pc.MaxFallSpeed, pc.Gravity*dt)

		if actor.Grounded {
			pc.CoyoteTimer = pc.CoyoteFrames
		}
		canJump := actor.Grounded || pc.CoyoteTimer > 0
		if !actor.Grounded && pc.CoyoteTimer > 0 {
			pc.CoyoteTimer--
		}

		if input.JumpPressed {
			pc.JumpBufferTimer = max(pc.JumpBufferFrames, 1)
		}

		if pc.JumpBufferTimer > 0 && canJump {
			vel.Value.Y = pc.JumpSpeed
			vel.Remainder.Y = 0
			pc.JumpBufferTimer = 0
			pc.CoyoteTimer = 0
		} else if pc.JumpBufferTimer > 0 {
			pc.JumpBufferTimer--
		}

		writeBack(w, e, component.VelocityComponent, vel, "player controller system: update velocity")
		writeBack(w, e, component.PlayerControllerComponent, pc, "player controller system: update controller")
	}
}

// approach moves from toward to by at most delta.
func approach(from, to, delta float64) float64 {
	if delta <= 0 {
		return from
	}
	if from < to {
		return min(from+delta, to)
	}
	return max(from-delta, to)
}
