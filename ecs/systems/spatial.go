package systems

import (
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/spatial"
)

// SpatialIndexSystem mirrors alien positions into a spatial index. New aliens
// are inserted at once; moves are picked up on the Refresher's cadence.
type SpatialIndexSystem struct {
	Index     *spatial.Index[ecs.Entity]
	Refresher spatial.Refresher
}

func NewSpatialIndexSystem(refreshEvery int) *SpatialIndexSystem {
	return &SpatialIndexSystem{
		Index:     spatial.New[ecs.Entity](),
		Refresher: spatial.Refresher{Every: refreshEvery},
	}
}

func (s *SpatialIndexSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	seen := make(map[ecs.Entity]struct{}, w.Aliens().Len())
	for _, id := range ecs.IntersectEntities(w.Aliens(), w.Transforms()) {
		e, ok := w.Entity(id)
		if !ok {
			continue
		}
		tr, _ := w.Transforms().Get(id)
		seen[e] = struct{}{}
		if s.Index.Has(e) {
			s.Index.Move(e, tr.Pos)
		} else {
			s.Index.Insert(e, tr.Pos)
		}
	}
	for _, e := range s.Index.Refs() {
		if _, ok := seen[e]; !ok {
			s.Index.Remove(e)
		}
	}
	s.Refresher.Tick(s.Index)
}
