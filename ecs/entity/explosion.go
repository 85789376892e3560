package entity

import (
	"fmt"

	"github.com/milk9111/cosmosraiders/common"
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/ecs/components"
	"github.com/milk9111/cosmosraiders/prefabs"
)

func NewExplosion(w *ecs.World, pos common.Vec2, spec prefabs.ExplosionSpec) (ecs.Entity, error) {
	e, err := buildSprite(w, pos, spec.Sprite)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("explosion: %w", err)
	}
	w.SetExplosion(e, &components.Explosion{MsecsTillDrop: spec.TTLMs})
	return e, nil
}
