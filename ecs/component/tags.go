package component

// Solid marks an immovable obstacle. Solids never move during a tick.
type Solid struct{}

var SolidComponent = NewComponent[Solid]()

// Actor marks a movable body resolved against solids every tick. Grounded is
// written only by the grounding pass.
type Actor struct {
	Grounded bool
}

var ActorComponent = NewComponent[Actor]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
