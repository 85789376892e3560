package spatial

// Refreshable is anything a Refresher can drive.
type Refreshable interface {
	Refresh()
}

// Refresher re-indexes on a fixed tick cadence. With Every = n, queries lag the
// true positions by at most n-1 ticks; Every <= 1 refreshes on every tick.
// The game never runs more than one tick stale: its config rejects Every > 2.
// Tick must be called exactly once per tick, after movement.
type Refresher struct {
	Every int
	ticks int
}

func (r *Refresher) every() int {
	if r.Every < 1 {
		return 1
	}
	return r.Every
}

// Staleness is the most ticks a query can lag behind.
func (r *Refresher) Staleness() int {
	return r.every() - 1
}

// Tick counts one tick and refreshes idx when the cadence is due. It returns
// true when it refreshed.
func (r *Refresher) Tick(idx Refreshable) bool {
	r.ticks++
	if r.ticks < r.every() {
		return false
	}
	r.ticks = 0
	idx.Refresh()
	return true
}
