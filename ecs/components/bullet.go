package components

// Laser is a player projectile moving straight up.
type Laser struct {
	Velocity float64
}
