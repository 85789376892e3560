package entity

import (
	"fmt"

	"github.com/milk9111/cosmosraiders/common"
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/ecs/components"
	"github.com/milk9111/cosmosraiders/prefabs"
)

// NewLaser spawns a laser at pos. Callers apply the spawn offset.
func NewLaser(w *ecs.World, pos common.Vec2, spec prefabs.LaserSpec) (ecs.Entity, error) {
	e, err := buildSprite(w, pos, spec.Sprite)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("laser: %w", err)
	}
	w.SetLaser(e, &components.Laser{Velocity: spec.Velocity})
	return e, nil
}
