package system

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
)

var errNoScriptLoader = errors.New("system: no script loader")

// responseScript is a compiled tengo program reading the globals axis, side
// and grounded, and rewriting vx, vy, rx and ry.
type responseScript struct {
	compiled *tengo.Compiled
}

var responseGlobals = []string{"vx", "vy", "rx", "ry"}

func compileResponseScript(src []byte) (*responseScript, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	for name, value := range map[string]interface{}{
		"axis":     "",
		"side":     "",
		"grounded": false,
		"vx":       0.0,
		"vy":       0.0,
		"rx":       0.0,
		"ry":       0.0,
	} {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("system: response script: add %s: %w", name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("system: response script: compile: %w", err)
	}
	return &responseScript{compiled: compiled}, nil
}

func (r *responseScript) run(evt ecs.CollisionEvent, vel component.Velocity, grounded bool) (component.Velocity, error) {
	inputs := []struct {
		name  string
		value interface{}
	}{
		{"axis", evt.Axis.String()},
		{"side", evt.Direction.String()},
		{"grounded", grounded},
		{"vx", vel.Value.X},
		{"vy", vel.Value.Y},
		{"rx", vel.Remainder.X},
		{"ry", vel.Remainder.Y},
	}
	for _, in := range inputs {
		if err := r.compiled.Set(in.name, in.value); err != nil {
			return vel, fmt.Errorf("system: response script: set %s: %w", in.name, err)
		}
	}

	if err := r.compiled.Run(); err != nil {
		return vel, fmt.Errorf("system: response script: run: %w", err)
	}

	out := [4]float64{}
	for i, name := range responseGlobals {
		v := r.compiled.Get(name)
		switch v.Value().(type) {
		case int64, float64:
			out[i] = v.Float()
		default:
			return vel, fmt.Errorf("system: response script: %s is %s, want a number", name, v.ValueType())
		}
	}

	vel.Value.X, vel.Value.Y = out[0], out[1]
	vel.Remainder.X, vel.Remainder.Y = clampRemainder(out[2]), clampRemainder(out[3])
	return vel, nil
}

// clampRemainder keeps a scripted remainder inside the open interval (-1, 1).
func clampRemainder(v float64) float64 {
	const limit = 0.999999
	switch {
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	default:
		return v
	}
}
