package swarm

import (
	"fmt"
	"math"

	"github.com/milk9111/cosmosraiders/common"
)

// Kind is the direction the whole formation is moving in.
type Kind int

const (
	Right Kind = iota
	Left
	Down
)

func (k Kind) String() string {
	switch k {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Movement is the one movement state shared by every enemy in a round. The zero
// value moves right, which is how a round starts. PixelsLeftToMove and
// ShouldMoveLeftAfter only mean something while Kind is Down.
type Movement struct {
	Kind                Kind
	PixelsLeftToMove    float64
	ShouldMoveLeftAfter bool
}

func (m Movement) String() string {
	if m.Kind != Down {
		return m.Kind.String()
	}
	after := Right
	if m.ShouldMoveLeftAfter {
		after = Left
	}
	return fmt.Sprintf("down(%.2f then %s)", m.PixelsLeftToMove, after)
}

// Config holds the formation tunables.
type Config struct {
	// Velocity in pixels per second, shared by horizontal and vertical moves.
	Velocity float64
	// Boundary is the symmetric horizontal limit; the formation turns once any
	// member reaches +/-Boundary.
	Boundary float64
	// StepY is how far the formation drops each time it turns.
	StepY float64
}

func DefaultConfig() Config {
	return Config{Velocity: 100, Boundary: 300, StepY: 12}
}

// Advance moves the formation for one tick of dt seconds and returns the next
// state and the moved positions. positions is not modified.
//
// Boundary checks use the group's extreme x, so the formation turns as one.
// An empty group is never moved and never turns from Left or Right; a Down
// episode still counts down.
func Advance(state Movement, dt float64, cfg Config, positions []common.Vec2) (Movement, []common.Vec2) {
	ds := cfg.Velocity * dt
	next := make([]common.Vec2, len(positions))
	copy(next, positions)

	switch state.Kind {
	case Left, Right:
		if len(next) == 0 {
			return state, next
		}
		dx := ds
		if state.Kind == Left {
			dx = -ds
		}
		for i := range next {
			next[i].X += dx
		}
		if state.Kind == Left && minX(next) <= -cfg.Boundary {
			return Movement{Kind: Down, PixelsLeftToMove: cfg.StepY, ShouldMoveLeftAfter: false}, next
		}
		if state.Kind == Right && maxX(next) >= cfg.Boundary {
			return Movement{Kind: Down, PixelsLeftToMove: cfg.StepY, ShouldMoveLeftAfter: true}, next
		}
		return state, next

	case Down:
		dy := math.Min(state.PixelsLeftToMove, ds)
		if dy > 0 {
			for i := range next {
				next[i].Y -= dy
			}
		}
		remaining := state.PixelsLeftToMove - ds
		if remaining <= 0 {
			if state.ShouldMoveLeftAfter {
				return Movement{Kind: Left}, next
			}
			return Movement{Kind: Right}, next
		}
		return Movement{Kind: Down, PixelsLeftToMove: remaining, ShouldMoveLeftAfter: state.ShouldMoveLeftAfter}, next
	}
	return state, next
}

func minX(ps []common.Vec2) float64 {
	m := math.Inf(1)
	for _, p := range ps {
		m = math.Min(m, p.X)
	}
	return m
}

func maxX(ps []common.Vec2) float64 {
	m := math.Inf(-1)
	for _, p := range ps {
		m = math.Max(m, p.X)
	}
	return m
}
