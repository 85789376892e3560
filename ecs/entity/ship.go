package entity

import (
	"fmt"

	"github.com/milk9111/cosmosraiders/common"
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/ecs/components"
	"github.com/milk9111/cosmosraiders/prefabs"
)

func NewShip(w *ecs.World, spec prefabs.ShipSpec) (ecs.Entity, error) {
	e, err := buildSprite(w, common.Vec2{X: 0, Y: spec.StartY}, spec.Sprite)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("ship: %w", err)
	}
	w.SetShip(e, &components.Ship{})
	return e, nil
}
