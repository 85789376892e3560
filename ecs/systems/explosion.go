package systems

import "github.com/milk9111/cosmosraiders/ecs"

// ExplosionSystem counts explosion timers down in milliseconds and removes
// the ones that ran out.
type ExplosionSystem struct{}

func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

func (s *ExplosionSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	var gone []int
	explosions := w.Explosions()
	for i, id := range explosions.Entities() {
		x := explosions.Values()[i]
		x.MsecsTillDrop -= dt * 1000
		if x.MsecsTillDrop <= 0 {
			gone = append(gone, id)
		}
	}
	destroyIDs(w, gone)
}
