package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Cardinal is one of the four axis-aligned directions. World space is y-up,
// so North points towards +Y.
type Cardinal uint8

const (
	West Cardinal = iota
	North
	East
	South
)

// Axis classifies a Cardinal as horizontal or vertical.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

func (c Cardinal) Valid() bool {
	return c <= South
}

// Vector returns the unit vector for c.
func (c Cardinal) Vector() cp.Vector {
	return cp.Vector{X: c.X(), Y: c.Y()}
}

func (c Cardinal) X() float64 {
	switch c {
	case West:
		return -1
	case East:
		return 1
	default:
		return 0
	}
}

func (c Cardinal) Y() float64 {
	switch c {
	case North:
		return 1
	case South:
		return -1
	default:
		return 0
	}
}

func (c Cardinal) IsHorizontal() bool {
	return c == West || c == East
}

func (c Cardinal) IsVertical() bool {
	return c == North || c == South
}

func (c Cardinal) Axis() Axis {
	if c.IsVertical() {
		return AxisVertical
	}
	return AxisHorizontal
}

// Opposite returns the direction facing away from c.
func (c Cardinal) Opposite() Cardinal {
	switch c {
	case West:
		return East
	case East:
		return West
	case North:
		return South
	default:
		return North
	}
}

func (c Cardinal) String() string {
	switch c {
	case West:
		return "west"
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return fmt.Sprintf("cardinal(%d)", uint8(c))
	}
}

// CardinalFromVector picks the dominant cardinal of v. The x component is
// checked before y, so a diagonal resolves horizontally.
func CardinalFromVector(v cp.Vector) (Cardinal, error) {
	switch {
	case v.X < 0:
		return West, nil
	case v.X > 0:
		return East, nil
	case v.Y > 0:
		return North, nil
	case v.Y < 0:
		return South, nil
	default:
		return 0, ErrZeroDirection
	}
}

// ParseCardinal parses the lower-case names used by prefab files.
func ParseCardinal(s string) (Cardinal, error) {
	switch s {
	case "west", "left":
		return West, nil
	case "north", "up":
		return North, nil
	case "east", "right":
		return East, nil
	case "south", "down":
		return South, nil
	default:
		return 0, fmt.Errorf("physics: parse cardinal %q: %w", s, ErrInvalidCardinal)
	}
}

// AxisCardinal returns the cardinal moving along axis with the sign of dir.
func AxisCardinal(axis Axis, dir float64) (Cardinal, bool) {
	switch {
	case dir == 0:
		return 0, false
	case axis == AxisHorizontal && dir > 0:
		return East, true
	case axis == AxisHorizontal:
		return West, true
	case dir > 0:
		return North, true
	default:
		return South, true
	}
}
