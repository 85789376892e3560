package systems

import (
	"fmt"

	"github.com/milk9111/cosmosraiders/collision"
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/ecs/entity"
	"github.com/milk9111/cosmosraiders/prefabs"
)

// AlienDestroyed is the payload of EventAlienDestroyed.
type AlienDestroyed struct {
	Laser  ecs.Entity
	Points int
}

// LaserCollisionSystem tests each laser against its nearest alien. A hit
// removes both, scores the alien's tier and leaves an explosion behind.
type LaserCollisionSystem struct {
	Spatial   *SpatialIndexSystem
	Detector  *collision.Detector
	Explosion prefabs.ExplosionSpec
}

func NewLaserCollisionSystem(idx *SpatialIndexSystem, det *collision.Detector, explosion prefabs.ExplosionSpec) *LaserCollisionSystem {
	return &LaserCollisionSystem{Spatial: idx, Detector: det, Explosion: explosion}
}

func (s *LaserCollisionSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.Spatial == nil || s.Detector == nil {
		return
	}
	idx := s.Spatial.Index
	lasers := append([]int(nil), ecs.IntersectEntities(w.Lasers(), w.Transforms())...)

	for _, id := range lasers {
		laser, ok := w.Entity(id)
		if !ok {
			continue
		}
		laserPos := w.GetTransform(laser).Pos
		cand, ok := idx.Nearest(laserPos)
		if !ok {
			return
		}
		alien := cand.Ref
		alienTr := w.GetTransform(alien)
		if alienTr == nil {
			idx.Remove(alien)
			continue
		}
		laserSprite, alienSprite := w.GetSprite(laser), w.GetSprite(alien)
		if laserSprite == nil || alienSprite == nil {
			continue
		}

		alienPos := alienTr.Pos
		if !s.Detector.Collide(laserSprite.Index, alienSprite.Index, laserPos, alienPos) {
			continue
		}

		points := w.GetAlien(alien).Tier.PointValue
		idx.Remove(alien)
		w.DestroyEntity(alien)
		w.DestroyEntity(laser)

		round := w.Round()
		round.Score += points
		round.Kills++

		if _, err := entity.NewExplosion(w, alienPos, s.Explosion); err != nil {
			fmt.Printf("collision: spawn explosion: %v\n", err)
		}
		w.Events().Push(ecs.Event{
			Kind:   ecs.EventAlienDestroyed,
			Entity: alien,
			Data:   AlienDestroyed{Laser: laser, Points: points},
		})
	}
}
