package component

// PlayerController holds movement tuning (units per second) and the jump
// timers driven by PlayerControllerSystem.
type PlayerController struct {
	MoveSpeed        float64
	Acceleration     float64
	Gravity          float64
	MaxFallSpeed     float64
	JumpSpeed        float64
	CoyoteFrames     int
	JumpBufferFrames int

	CoyoteTimer     int
	JumpBufferTimer int
}

var PlayerControllerComponent = NewComponent[PlayerController]()
