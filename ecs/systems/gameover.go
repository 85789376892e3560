package systems

import (
	"fmt"

	"github.com/milk9111/cosmosraiders/ecs"
)

// GameOverSystem ends the round once any alien is lower than the ship.
type GameOverSystem struct{}

func NewGameOverSystem() *GameOverSystem {
	return &GameOverSystem{}
}

func (s *GameOverSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.Round().Over {
		return
	}
	ships := ecs.IntersectEntities(w.Ships(), w.Transforms())
	if len(ships) == 0 {
		return
	}
	shipTr, _ := w.Transforms().Get(ships[0])
	shipY := shipTr.Pos.Y

	for _, id := range ecs.IntersectEntities(w.Aliens(), w.Transforms()) {
		tr, _ := w.Transforms().Get(id)
		if tr.Pos.Y >= shipY {
			continue
		}
		round := w.Round()
		round.Over = true
		e, _ := w.Entity(id)
		fmt.Printf("gameover: alien %s reached y=%.1f below ship y=%.1f, score %d\n", e, tr.Pos.Y, shipY, round.Score)
		w.Events().Push(ecs.Event{Kind: ecs.EventGameOver, Entity: e, Data: round.Score})
		return
	}
}
