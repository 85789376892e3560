package components

// Round is the per-round bookkeeping the game loop reads back.
type Round struct {
	Score int
	Kills int
	Over  bool
	Ticks uint64
}
