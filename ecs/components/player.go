package components

// Ship is the player's cannon. DeltaX is the per-tick horizontal displacement;
// it decays every tick so the ship glides to a stop.
type Ship struct {
	DeltaX float64
}
