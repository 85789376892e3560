package systems

import (
	"fmt"

	"github.com/milk9111/cosmosraiders/common"
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/swarm"
)

// SwarmMovementSystem owns the round's single movement state and applies it
// to every alien at once.
type SwarmMovementSystem struct {
	Config swarm.Config
	State  swarm.Movement
	// Verbose prints every state change.
	Verbose bool

	ids       []int
	positions []common.Vec2
}

func NewSwarmMovementSystem(cfg swarm.Config) *SwarmMovementSystem {
	return &SwarmMovementSystem{Config: cfg}
}

// Reset puts the formation back to its round-start state.
func (s *SwarmMovementSystem) Reset() {
	s.State = swarm.Movement{}
}

func (s *SwarmMovementSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	s.ids = s.ids[:0]
	s.positions = s.positions[:0]
	for _, id := range ecs.IntersectEntities(w.Aliens(), w.Transforms()) {
		tr, _ := w.Transforms().Get(id)
		s.ids = append(s.ids, id)
		s.positions = append(s.positions, tr.Pos)
	}

	next, moved := swarm.Advance(s.State, dt, s.Config, s.positions)
	for i, id := range s.ids {
		tr, _ := w.Transforms().Get(id)
		tr.Pos = moved[i]
	}

	if next.Kind != s.State.Kind {
		if s.Verbose {
			fmt.Printf("swarm: %s -> %s\n", s.State, next)
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventMovementChanged, Data: next})
	}
	s.State = next
}
