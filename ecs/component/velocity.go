package component

import "github.com/jakecoffman/cp"

// Velocity is the signed target speed in units per second plus the sub-unit
// motion carried between ticks. The movement integrator only ever writes
// Remainder.
type Velocity struct {
	Value     cp.Vector
	Remainder cp.Vector
}

// Direction returns the per-axis sign of Value, 0 where Value is 0.
func (v Velocity) Direction() cp.Vector {
	return cp.Vector{X: sign(v.Value.X), Y: sign(v.Value.Y)}
}

func (v *Velocity) ResetX() {
	v.Value.X = 0
	v.Remainder.X = 0
}

func (v *Velocity) ResetY() {
	v.Value.Y = 0
	v.Remainder.Y = 0
}

func (v *Velocity) Reset() {
	v.ResetX()
	v.ResetY()
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

var VelocityComponent = NewComponent[Velocity]()
