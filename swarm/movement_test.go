package swarm

import (
	"testing"

	"github.com/milk9111/cosmosraiders/common"
)

func row(xs ...float64) []common.Vec2 {
	out := make([]common.Vec2, len(xs))
	for i, x := range xs {
		out[i] = common.Vec2{X: x, Y: 100}
	}
	return out
}

func TestZeroValueMovesRight(t *testing.T) {
	var m Movement
	if m.Kind != Right {
		t.Fatalf("round should start moving right, got %v", m)
	}
}

func TestAdvanceRightThenDownThenLeft(t *testing.T) {
	cfg := Config{Velocity: 100, Boundary: 300, StepY: 12}
	state := Movement{}
	pos := row(-100, 0, 200)

	// 25px per tick: 200 -> 300 after four ticks
	for i := 0; i < 3; i++ {
		state, pos = Advance(state, 0.25, cfg, pos)
		if state.Kind != Right {
			t.Fatalf("tick %d: turned early at max x %v", i, pos[2].X)
		}
	}
	state, pos = Advance(state, 0.25, cfg, pos)
	want := Movement{Kind: Down, PixelsLeftToMove: 12, ShouldMoveLeftAfter: true}
	if state != want {
		t.Fatalf("expected %v, got %v", want, state)
	}
	if pos[2].X != 300 || pos[0].X != 0 {
		t.Fatalf("formation should move rigidly, got %+v", pos)
	}

	// 6.25px per tick: 12 -> 5.75 -> done
	state, pos = Advance(state, 0.0625, cfg, pos)
	if state.Kind != Down || state.PixelsLeftToMove != 5.75 {
		t.Fatalf("expected down(5.75), got %v", state)
	}
	state, pos = Advance(state, 0.0625, cfg, pos)
	if state.Kind != Left {
		t.Fatalf("expected left after the drop, got %v", state)
	}
	for _, p := range pos {
		if p.Y != 88 {
			t.Fatalf("expected the formation to drop exactly 12px, got y=%v", p.Y)
		}
		if p.X != 0 && p.X != 100 && p.X != 300 {
			t.Fatalf("x should not change while moving down, got %v", p.X)
		}
	}
}

func TestAdvanceLeftBoundary(t *testing.T) {
	cfg := DefaultConfig()
	state := Movement{Kind: Left}
	state, pos := Advance(state, 0.5, cfg, row(-250, 0))
	if state.Kind != Down || state.ShouldMoveLeftAfter {
		t.Fatalf("expected down then right, got %v", state)
	}
	if state.PixelsLeftToMove != cfg.StepY {
		t.Fatalf("expected a fresh drop of %v, got %v", cfg.StepY, state.PixelsLeftToMove)
	}
	if pos[0].X != -300 {
		t.Fatalf("expected -300, got %v", pos[0].X)
	}
}

func TestAdvanceUsesGroupExtremum(t *testing.T) {
	cfg := DefaultConfig()
	// only one member reaches the edge; the whole group turns
	state, _ := Advance(Movement{}, 0.1, cfg, row(-50, 0, 295))
	if state.Kind != Down {
		t.Fatalf("expected the group to turn when one member reaches the edge, got %v", state)
	}
}

func TestAdvanceDownNeverOvershoots(t *testing.T) {
	cfg := Config{Velocity: 100, Boundary: 300, StepY: 12}
	state := Movement{Kind: Down, PixelsLeftToMove: cfg.StepY}
	pos := row(0)
	prev := state.PixelsLeftToMove
	for state.Kind == Down {
		state, pos = Advance(state, 0.05, cfg, pos)
		if state.Kind == Down {
			if state.PixelsLeftToMove > prev {
				t.Fatalf("pixels left increased: %v -> %v", prev, state.PixelsLeftToMove)
			}
			prev = state.PixelsLeftToMove
		}
	}
	if state.Kind != Right {
		t.Fatalf("expected right after a drop that started from the left edge, got %v", state)
	}
	if drop := 100 - pos[0].Y; drop < 11.999 || drop > 12.001 {
		t.Fatalf("expected a 12px drop, got %v", drop)
	}

	// one huge tick still drops only StepY
	state, pos = Advance(Movement{Kind: Down, PixelsLeftToMove: 12}, 10, cfg, row(0))
	if state.Kind != Right || pos[0].Y != 88 {
		t.Fatalf("expected clamp to 12px, got %v y=%v", state, pos[0].Y)
	}
}

func TestAdvanceEmptyGroup(t *testing.T) {
	cfg := DefaultConfig()
	for _, k := range []Kind{Left, Right} {
		state, pos := Advance(Movement{Kind: k}, 100, cfg, nil)
		if state.Kind != k {
			t.Fatalf("empty group should not turn from %v, got %v", k, state)
		}
		if len(pos) != 0 {
			t.Fatalf("expected no positions, got %d", len(pos))
		}
	}

	state, _ := Advance(Movement{Kind: Down, PixelsLeftToMove: 12, ShouldMoveLeftAfter: true}, 1, cfg, nil)
	if state.Kind != Left {
		t.Fatalf("down episode should still finish for an empty group, got %v", state)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	in := row(1, 2, 3)
	_, out := Advance(Movement{}, 1, DefaultConfig(), in)
	if in[0].X != 1 || in[2].X != 3 {
		t.Fatalf("input positions were modified: %+v", in)
	}
	if out[0].X != 101 {
		t.Fatalf("expected moved copy, got %+v", out)
	}
}

func TestMovementString(t *testing.T) {
	cases := []struct {
		m    Movement
		want string
	}{
		{Movement{}, "right"},
		{Movement{Kind: Left}, "left"},
		{Movement{Kind: Down, PixelsLeftToMove: 4.5, ShouldMoveLeftAfter: true}, "down(4.50 then left)"},
		{Movement{Kind: Down, PixelsLeftToMove: 12}, "down(12.00 then right)"},
	}
	for _, c := range cases {
		if got := c.m.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}
