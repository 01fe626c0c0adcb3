package entity

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/levels"
	"github.com/milk9111/solidstep/physics"
)

const CrateShape = "crate_probe"

// LoadLevelToWorld spawns one solid per merged block of physics tiles and the
// level's entities. Level rows run top to bottom; the world is y-up with the
// level's bottom-left corner at the origin.
func LoadLevelToWorld(world *ecs.World, shapes *physics.ShapeLibrary, lvl *levels.Level) error {
	if world == nil || lvl == nil {
		return fmt.Errorf("load level: world or level is nil")
	}
	if err := lvl.Validate(); err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	tileSize := lvl.Tile()
	height := float64(lvl.Height) * tileSize
	bounds := world.CreateEntity()
	if err := ecs.Add(world, bounds, component.LevelBoundsComponent, component.LevelBounds{
		Width:  float64(lvl.Width) * tileSize,
		Height: height,
	}); err != nil {
		return err
	}

	// Blocks of the same size share one shape instance.
	boxes := make(map[cp.Vector]physics.SharedShape)
	defer func() {
		for _, s := range boxes {
			s.Release()
		}
	}()

	for layerIdx, layer := range lvl.Layers {
		if !lvl.HasPhysics(layerIdx) {
			continue
		}
		for _, r := range levels.MergeSolidRects(layer, lvl.Width, lvl.Height) {
			half := cp.Vector{X: float64(r.W) * tileSize / 2, Y: float64(r.H) * tileSize / 2}
			shape, ok := boxes[half]
			if !ok {
				var err error
				shape, err = physics.NewSharedAABB(half)
				if err != nil {
					return fmt.Errorf("load level: layer %d: %w", layerIdx, err)
				}
				boxes[half] = shape
			}
			x := float64(r.X)*tileSize + half.X
			y := height - float64(r.Y)*tileSize - half.Y
			if _, err := NewSolid(world, shape.Clone(), x, y); err != nil {
				return fmt.Errorf("load level: layer %d: %w", layerIdx, err)
			}
		}
	}

	for _, ent := range lvl.Entities {
		x, y := float64(ent.X), height-float64(ent.Y)
		switch strings.ToLower(ent.Type) {
		case "player":
			if _, err := NewPlayerAt(world, shapes, x, y); err != nil {
				return err
			}
		case "crate":
			vel := cp.Vector{X: propFloat(ent.Props, "vx"), Y: propFloat(ent.Props, "vy")}
			if _, err := NewActorFromLibrary(world, shapes, CrateShape, cp.Vector{X: x, Y: y}, vel); err != nil {
				return err
			}
		default:
			// Unknown entity type; ignore for now.
		}
	}

	return nil
}

func propFloat(props map[string]interface{}, key string) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
