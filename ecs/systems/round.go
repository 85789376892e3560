package systems

import (
	"context"
	"fmt"

	"github.com/milk9111/cosmosraiders/collision"
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/ecs/components"
	"github.com/milk9111/cosmosraiders/ecs/entity"
	"github.com/milk9111/cosmosraiders/prefabs"
)

// Round is a world populated for play, plus the systems callers inspect.
type Round struct {
	World   *ecs.World
	Swarm   *SwarmMovementSystem
	Spatial *SpatialIndexSystem
	Ship    ecs.Entity
}

// NewRound spawns the formation and ship described by spec and installs the
// systems in tick order: ship control, laser movement, swarm movement, spatial
// refresh, laser collision, explosion timers, game over.
//
// A failing formation script is reported and the built-in grid is used.
func NewRound(ctx context.Context, spec *prefabs.RaidersSpec, input *components.InputState, ms *collision.Matrices) (*Round, error) {
	if spec == nil {
		return nil, fmt.Errorf("round: %w: nil spec", prefabs.ErrInvalidConfig)
	}
	w := ecs.NewWorld()

	slots, err := prefabs.Formation(ctx, spec)
	if err != nil {
		fmt.Printf("round: formation script failed, using grid: %v\n", err)
	}
	tiers := spec.SwarmTiers()
	if _, err := entity.SpawnFormation(w, slots, tiers); err != nil {
		return nil, fmt.Errorf("round: spawn formation: %w", err)
	}
	ship, err := entity.NewShip(w, spec.Ship)
	if err != nil {
		return nil, fmt.Errorf("round: %w", err)
	}

	r := &Round{
		World:   w,
		Swarm:   NewSwarmMovementSystem(spec.SwarmConfig()),
		Spatial: NewSpatialIndexSystem(spec.Spatial.RefreshEvery),
		Ship:    ship,
	}
	w.AddSystem(NewShipControlSystem(input, spec.Ship, spec.Laser))
	w.AddSystem(NewLaserMovementSystem(spec.Laser.DespawnY))
	w.AddSystem(r.Swarm)
	w.AddSystem(r.Spatial)
	w.AddSystem(NewLaserCollisionSystem(r.Spatial, collision.NewDetector(ms), spec.Explosion))
	w.AddSystem(NewExplosionSystem())
	w.AddSystem(NewGameOverSystem())
	return r, nil
}
