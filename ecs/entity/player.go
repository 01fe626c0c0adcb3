package entity

import (
	"fmt"

	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/physics"
)

const PlayerPrefab = "player.yaml"

func NewPlayer(w *ecs.World, shapes *physics.ShapeLibrary) (ecs.Entity, error) {
	return BuildEntity(w, shapes, PlayerPrefab)
}

func NewPlayerAt(w *ecs.World, shapes *physics.ShapeLibrary, x, y float64) (ecs.Entity, error) {
	entity, err := BuildEntity(w, shapes, PlayerPrefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
