package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/cosmosraiders/common"
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/ecs/components"
)

var (
	ErrNilWorld    = errors.New("entity: world is nil")
	ErrSpriteIndex = errors.New("entity: sprite index out of range")
	ErrUnknownTier = errors.New("entity: unknown tier")
)

func checkSprite(index int) error {
	if index < 0 || index >= common.SpriteN {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrSpriteIndex, index, common.SpriteN)
	}
	return nil
}

// buildSprite creates an entity with the transform and sprite pair every
// drawable, collidable entity carries.
func buildSprite(w *ecs.World, pos common.Vec2, sprite int) (ecs.Entity, error) {
	if w == nil {
		return ecs.Entity{}, ErrNilWorld
	}
	if err := checkSprite(sprite); err != nil {
		return ecs.Entity{}, err
	}
	e := w.CreateEntity()
	w.SetTransform(e, &components.Transform{Pos: pos})
	w.SetSprite(e, &components.Sprite{Index: sprite})
	return e, nil
}
