package spatial

import (
	"math"
	"testing"

	"github.com/milk9111/cosmosraiders/common"
)

func TestNearestEmpty(t *testing.T) {
	idx := New[int]()
	if _, ok := idx.Nearest(common.Vec2{}); ok {
		t.Fatalf("empty index should report no candidate")
	}
}

func TestNearestPicksClosest(t *testing.T) {
	idx := New[string]()
	idx.Insert("a", common.Vec2{X: -100, Y: 0})
	idx.Insert("b", common.Vec2{X: 30, Y: 40})
	idx.Insert("c", common.Vec2{X: 10, Y: 200})

	cases := []struct {
		name  string
		query common.Vec2
		want  string
		dist  float64
	}{
		{"origin", common.Vec2{}, "b", 50},
		{"left", common.Vec2{X: -90, Y: 5}, "a", math.Hypot(10, 5)},
		{"top", common.Vec2{X: 0, Y: 180}, "c", math.Hypot(10, 20)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := idx.Nearest(c.query)
			if !ok {
				t.Fatalf("expected a candidate")
			}
			if got.Ref != c.want {
				t.Fatalf("nearest to %+v = %q, want %q", c.query, got.Ref, c.want)
			}
			if math.Abs(got.Distance-c.dist) > 1e-9 {
				t.Fatalf("distance = %v, want %v", got.Distance, c.dist)
			}
		})
	}
}

func TestNearestTieGoesToFirstInserted(t *testing.T) {
	idx := New[string]()
	// all three are exactly 5 away from the origin
	idx.Insert("early", common.Vec2{X: 3, Y: 4})
	idx.Insert("late", common.Vec2{X: -3, Y: -4})
	idx.Insert("latest", common.Vec2{X: -4, Y: 3})

	got, ok := idx.Nearest(common.Vec2{})
	if !ok || got.Ref != "early" {
		t.Fatalf("expected the earliest insert to win a tie, got %+v", got)
	}

	idx.Remove("early")
	got, _ = idx.Nearest(common.Vec2{})
	if got.Ref != "late" {
		t.Fatalf("expected the next earliest insert after removal, got %+v", got)
	}
}

func TestMoveIsDeferredUntilRefresh(t *testing.T) {
	idx := New[int]()
	idx.Insert(1, common.Vec2{X: 0, Y: 0})
	idx.Insert(2, common.Vec2{X: 100, Y: 0})

	idx.Move(2, common.Vec2{X: 5, Y: 0})
	if idx.Pending() != 1 {
		t.Fatalf("expected one pending move, got %d", idx.Pending())
	}
	got, _ := idx.Nearest(common.Vec2{X: 6})
	if got.Ref != 1 {
		t.Fatalf("query before refresh should see the old position, got %+v", got)
	}

	idx.Refresh()
	if idx.Pending() != 0 {
		t.Fatalf("refresh should clear pending moves")
	}
	got, _ = idx.Nearest(common.Vec2{X: 6})
	if got.Ref != 2 || got.Pos != (common.Vec2{X: 5}) {
		t.Fatalf("query after refresh should see the new position, got %+v", got)
	}
}

func TestMoveBackCancelsPending(t *testing.T) {
	idx := New[int]()
	idx.Insert(1, common.Vec2{X: 1})
	idx.Move(1, common.Vec2{X: 2})
	idx.Move(1, common.Vec2{X: 1})
	if idx.Pending() != 0 {
		t.Fatalf("moving back to the indexed position should cancel the pending move")
	}
	idx.Move(7, common.Vec2{})
	if idx.Len() != 1 || idx.Has(7) {
		t.Fatalf("moving an untracked ref should not insert it")
	}
}

func TestRemove(t *testing.T) {
	idx := New[int]()
	idx.Insert(1, common.Vec2{})
	idx.Move(1, common.Vec2{X: 9})
	idx.Remove(1)
	idx.Remove(1)
	if idx.Len() != 0 || idx.Pending() != 0 {
		t.Fatalf("expected empty index, len=%d pending=%d", idx.Len(), idx.Pending())
	}
	if _, ok := idx.Nearest(common.Vec2{}); ok {
		t.Fatalf("removed entries should not be returned")
	}
}

func TestInsertTrackedIsMove(t *testing.T) {
	idx := New[int]()
	idx.Insert(1, common.Vec2{})
	idx.Insert(1, common.Vec2{X: 4})
	if idx.Len() != 1 || idx.Pending() != 1 {
		t.Fatalf("expected one entry with a pending move, len=%d pending=%d", idx.Len(), idx.Pending())
	}
}

func TestRefsInInsertionOrder(t *testing.T) {
	idx := New[string]()
	for _, ref := range []string{"c", "a", "b"} {
		idx.Insert(ref, common.Vec2{})
	}
	idx.Remove("a")
	idx.Insert("a", common.Vec2{})

	got := idx.Refs()
	want := []string{"c", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNearestBeyondFirstQueryBox(t *testing.T) {
	cases := []struct {
		name  string
		near  common.Vec2
		far   common.Vec2
		query common.Vec2
		want  string
	}{
		// "corner" sits inside the first search box but outside its circle;
		// "edge" is closer yet outside the box
		{"corner_beaten_outside_box", common.Vec2{X: 70, Y: 0}, common.Vec2{X: 60, Y: 60}, common.Vec2{}, "near"},
		{"only_far_entries", common.Vec2{X: 5000, Y: 0}, common.Vec2{X: -9000, Y: 0}, common.Vec2{}, "near"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			idx := New[string]()
			idx.Insert("far", c.far)
			idx.Insert("near", c.near)
			got, ok := idx.Nearest(c.query)
			if !ok || got.Ref != c.want {
				t.Fatalf("nearest to %+v = %+v, want %q", c.query, got, c.want)
			}
		})
	}
}

func TestRefreshMovesShapeInTree(t *testing.T) {
	idx := New[int]()
	idx.Insert(1, common.Vec2{X: -1000, Y: -1000})
	idx.Insert(2, common.Vec2{X: 500, Y: 500})

	idx.Move(1, common.Vec2{X: 2, Y: 2})
	idx.Refresh()

	got, ok := idx.Nearest(common.Vec2{})
	if !ok || got.Ref != 1 || math.Abs(got.Distance-math.Hypot(2, 2)) > 1e-9 {
		t.Fatalf("expected the refreshed position to be found near the origin, got %+v", got)
	}
	got, _ = idx.Nearest(common.Vec2{X: -1000, Y: -1000})
	if got.Ref != 1 || got.Pos != (common.Vec2{X: 2, Y: 2}) {
		t.Fatalf("old position should no longer be indexed, got %+v", got)
	}
}
