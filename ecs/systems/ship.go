package systems

import (
	"fmt"

	"github.com/milk9111/cosmosraiders/common"
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/ecs/components"
	"github.com/milk9111/cosmosraiders/ecs/entity"
	"github.com/milk9111/cosmosraiders/prefabs"
)

// ShipControlSystem steers the ship from Input and fires lasers.
type ShipControlSystem struct {
	Input *components.InputState
	Ship  prefabs.ShipSpec
	Laser prefabs.LaserSpec
}

func NewShipControlSystem(input *components.InputState, ship prefabs.ShipSpec, laser prefabs.LaserSpec) *ShipControlSystem {
	return &ShipControlSystem{Input: input, Ship: ship, Laser: laser}
}

// Update accelerates the ship, applies and damps its displacement, and spawns
// a laser when Fire is set. Fire is cleared once handled so a press fires once.
func (s *ShipControlSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.Input == nil {
		return
	}
	in := s.Input
	half := float64(common.FieldWidth) / 2

	for _, id := range ecs.IntersectEntities(w.Ships(), w.Transforms()) {
		ship, _ := w.Ships().Get(id)
		tr, _ := w.Transforms().Get(id)

		if in.Left {
			ship.DeltaX -= s.Ship.Acceleration * dt
		}
		if in.Right {
			ship.DeltaX += s.Ship.Acceleration * dt
		}
		ship.DeltaX = common.Clamp(ship.DeltaX, -s.Ship.MaxVelocity, s.Ship.MaxVelocity)
		tr.Pos.X = common.Clamp(tr.Pos.X+ship.DeltaX, -half, half)
		ship.DeltaX *= s.Ship.Damping

		if !in.Fire {
			continue
		}
		pos := common.Vec2{X: tr.Pos.X, Y: tr.Pos.Y + s.Laser.SpawnOffsetY}
		laser, err := entity.NewLaser(w, pos, s.Laser)
		if err != nil {
			fmt.Printf("ship: fire laser: %v\n", err)
			continue
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventLaserFired, Entity: laser, Data: pos})
	}
	in.Fire = false
}
