package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PhysicsSpec is physics.yaml: the tick rate, the broadphase switch and the
// named shapes every collider is bound from.
type PhysicsSpec struct {
	TPS        int         `yaml:"tps"`
	Broadphase bool        `yaml:"broadphase"`
	Shapes     []ShapeSpec `yaml:"shapes"`
}

// ShapeSpec describes one library entry. Type is aabb, ray or custom.
type ShapeSpec struct {
	Name       string     `yaml:"name"`
	Type       string     `yaml:"type"`
	HalfWidth  float64    `yaml:"half_width"`
	HalfHeight float64    `yaml:"half_height"`
	Direction  string     `yaml:"direction"`
	Length     float64    `yaml:"length"`
	Parts      []PartSpec `yaml:"parts"`
}

// PartSpec places an earlier library shape inside a custom shape.
type PartSpec struct {
	Shape   string  `yaml:"shape"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

const PhysicsFile = "physics.yaml"

func LoadPhysicsSpec() (PhysicsSpec, error) {
	spec, err := LoadSpec[PhysicsSpec](PhysicsFile)
	if err != nil {
		return spec, err
	}
	if spec.TPS <= 0 {
		spec.TPS = 60
	}
	return spec, nil
}
