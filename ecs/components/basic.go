package components

import "github.com/milk9111/cosmosraiders/common"

// Transform stores the center of an entity in play-field space.
type Transform struct {
	Pos common.Vec2
}

// Sprite stores the sprite-sheet cell an entity is drawn with and collides as.
type Sprite struct {
	Index int
}
