package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/physics"
	"github.com/milk9111/solidstep/prefabs"
)

var ErrUnknownShape = errors.New("entity: unknown shape")

type buildContext struct {
	PrefabPath string
	Shapes     *physics.ShapeLibrary
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":         addPlayerTag,
	"solid":              addSolid,
	"actor":              addActor,
	"transform":          addTransform,
	"velocity":           addVelocity,
	"collider":           addCollider,
	"input":              addInput,
	"player_controller":  addPlayerController,
	"collision_response": addCollisionResponse,
}

var componentBuildOrder = []string{
	"player_tag",
	"solid",
	"actor",
	"transform",
	"velocity",
	"collider",
	"input",
	"player_controller",
	"collision_response",
}

// BuildEntity creates an entity from a prefab's component map. Collider
// shapes are bound from shapes by name.
func BuildEntity(w *ecs.World, shapes *physics.ShapeLibrary, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, shapes, prefabPath, spec)
}

func buildFromSpec(w *ecs.World, shapes *physics.ShapeLibrary, prefabPath string, spec prefabs.EntityBuildSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	names := make([]string, 0, len(spec.Components))
	seen := make(map[string]bool, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range spec.Components {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	e := w.CreateEntity()
	ctx := &buildContext{PrefabPath: prefabPath, Shapes: shapes}
	for _, name := range names {
		builder, ok := componentRegistry[name]
		if !ok {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, spec.Components[name], ctx); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	return ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y})
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{})
}

func addSolid(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.SolidComponent, component.Solid{})
}

func addActor(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ActorComponent, component.Actor{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent, component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return SetEntityTransform(w, e, spec.X, spec.Y)
}

type velocitySpec = prefabs.VelocityComponentSpec

func addVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[velocitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode velocity spec: %w", err)
	}
	vel := component.Velocity{}
	vel.Value.X, vel.Value.Y = spec.X, spec.Y
	return ecs.Add(w, e, component.VelocityComponent, vel)
}

type colliderSpec = prefabs.ColliderComponentSpec

func addCollider(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[colliderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	shape, ok := ctx.Shapes.Lookup(spec.Shape)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShape, spec.Shape)
	}
	if err := ecs.Add(w, e, component.ColliderComponent, component.Collider{Shape: shape, ShapeName: spec.Shape}); err != nil {
		shape.Release()
		return err
	}
	return nil
}

type playerControllerSpec = prefabs.PlayerControllerComponentSpec

func addPlayerController(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerControllerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player controller spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerControllerComponent, component.PlayerController{
		MoveSpeed:        spec.MoveSpeed,
		Acceleration:     spec.Acceleration,
		Gravity:          spec.Gravity,
		MaxFallSpeed:     spec.MaxFallSpeed,
		JumpSpeed:        spec.JumpSpeed,
		CoyoteFrames:     spec.CoyoteFrames,
		JumpBufferFrames: spec.JumpBufferFrames,
	})
}

type collisionResponseSpec = prefabs.CollisionResponseComponentSpec

func addCollisionResponse(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collisionResponseSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision response spec: %w", err)
	}
	return ecs.Add(w, e, component.CollisionResponseComponent, component.CollisionResponse{Script: spec.Script})
}
