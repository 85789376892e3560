package swarm

// Tier describes one kind of enemy. Tiers differ only in points and sprite.
type Tier struct {
	Name        string
	PointValue  int
	SpriteIndex int
}

// DefaultTiers are ordered weakest first; the formation puts the strongest on top.
var DefaultTiers = []Tier{
	{Name: "low", PointValue: 10, SpriteIndex: 1},
	{Name: "mid", PointValue: 20, SpriteIndex: 3},
	{Name: "high", PointValue: 30, SpriteIndex: 5},
}
