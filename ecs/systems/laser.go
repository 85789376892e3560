package systems

import (
	"github.com/milk9111/cosmosraiders/ecs"
)

// LaserMovementSystem moves lasers up and despawns them past DespawnY.
type LaserMovementSystem struct {
	DespawnY float64
}

func NewLaserMovementSystem(despawnY float64) *LaserMovementSystem {
	return &LaserMovementSystem{DespawnY: despawnY}
}

func (s *LaserMovementSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	var gone []int
	for _, id := range ecs.IntersectEntities(w.Lasers(), w.Transforms()) {
		laser, _ := w.Lasers().Get(id)
		tr, _ := w.Transforms().Get(id)
		tr.Pos.Y += laser.Velocity * dt
		if tr.Pos.Y > s.DespawnY {
			gone = append(gone, id)
		}
	}
	destroyIDs(w, gone)
}

func destroyIDs(w *ecs.World, ids []int) {
	for _, id := range ids {
		if e, ok := w.Entity(id); ok {
			w.DestroyEntity(e)
		}
	}
}
