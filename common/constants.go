package common

// Sprite sheet geometry. The collision blob is sized from these at compile time.
const (
	SpriteW    = 32
	SpriteH    = 32
	SpriteCols = 8
	SpriteRows = 2
	SpriteN    = SpriteCols * SpriteRows

	SpriteHalfW = float64(SpriteW) / 2
	SpriteHalfH = float64(SpriteH) / 2
)

// Play-field size in pixels. The field is centered on the origin and y grows upward.
const (
	FieldWidth  = 640
	FieldHeight = 480
)
