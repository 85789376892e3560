package components

import "github.com/milk9111/cosmosraiders/swarm"

// Alien marks a formation member. Its movement comes from the shared swarm
// state, never from the alien itself.
type Alien struct {
	Tier swarm.Tier
}

// Explosion is left where an alien died and removed once its timer runs out.
type Explosion struct {
	MsecsTillDrop float64
}
