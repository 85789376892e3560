package spatial

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmosraiders/common"
)

// Candidate is the result of a nearest-neighbour query.
type Candidate[K comparable] struct {
	Ref      K
	Pos      common.Vec2
	Distance float64
}

type entry[K comparable] struct {
	ref   K
	seq   uint64
	body  *cp.Body
	shape *cp.Shape
	// pos is the latest reported position; the shape keeps the indexed one
	// until the next Refresh.
	pos     common.Vec2
	indexed common.Vec2
	dirty   bool
}

// Index tracks live enemy positions in a chipmunk space and answers
// nearest-neighbour queries. Each enemy is a zero-radius circle on its own
// static body, so the space's bounding-box tree does the spatial work.
//
// Insert and Remove take effect immediately. Move is only recorded; queries see
// the new position after the next Refresh.
type Index[K comparable] struct {
	space   *cp.Space
	entries map[K]*entry[K]
	nextSeq uint64
	dirty   int
}

func New[K comparable]() *Index[K] {
	return &Index[K]{
		space:   cp.NewSpace(),
		entries: make(map[K]*entry[K]),
	}
}

// Len returns the number of tracked entries.
func (idx *Index[K]) Len() int {
	return len(idx.entries)
}

// Has reports whether ref is tracked.
func (idx *Index[K]) Has(ref K) bool {
	_, ok := idx.entries[ref]
	return ok
}

// Refs returns the tracked refs in insertion order.
func (idx *Index[K]) Refs() []K {
	es := make([]*entry[K], 0, len(idx.entries))
	for _, e := range idx.entries {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
	out := make([]K, len(es))
	for i, e := range es {
		out[i] = e.ref
	}
	return out
}

// Insert starts tracking ref at pos. Inserting a tracked ref is a Move.
func (idx *Index[K]) Insert(ref K, pos common.Vec2) {
	if _, ok := idx.entries[ref]; ok {
		idx.Move(ref, pos)
		return
	}

	body := cp.NewStaticBody()
	body.SetPosition(toVector(pos))
	shape := cp.NewCircle(body, 0, cp.Vector{})

	idx.nextSeq++
	e := &entry[K]{
		ref:     ref,
		seq:     idx.nextSeq,
		body:    body,
		shape:   shape,
		pos:     pos,
		indexed: pos,
	}
	shape.UserData = e

	idx.space.AddBody(body)
	idx.space.AddShape(shape)
	idx.entries[ref] = e
}

// Move records a new position for ref. It is a no-op for untracked refs.
func (idx *Index[K]) Move(ref K, pos common.Vec2) {
	e, ok := idx.entries[ref]
	if !ok {
		return
	}
	e.pos = pos
	if e.pos == e.indexed {
		if e.dirty {
			e.dirty = false
			idx.dirty--
		}
		return
	}
	if !e.dirty {
		e.dirty = true
		idx.dirty++
	}
}

// Remove stops tracking ref.
func (idx *Index[K]) Remove(ref K) {
	e, ok := idx.entries[ref]
	if !ok {
		return
	}
	if e.dirty {
		idx.dirty--
	}
	idx.space.RemoveShape(e.shape)
	idx.space.RemoveBody(e.body)
	e.shape.UserData = nil
	delete(idx.entries, ref)
}

// Pending returns how many moves are waiting for the next Refresh.
func (idx *Index[K]) Pending() int {
	return idx.dirty
}

// Refresh re-indexes every entry moved since the last refresh.
func (idx *Index[K]) Refresh() {
	if idx.dirty == 0 {
		return
	}
	for _, e := range idx.entries {
		if !e.dirty {
			continue
		}
		// static shapes only get a new bounding box when re-added
		idx.space.RemoveShape(e.shape)
		e.body.SetPosition(toVector(e.pos))
		idx.space.AddShape(e.shape)
		e.indexed = e.pos
		e.dirty = false
	}
	idx.dirty = 0
}

// Nearest returns the tracked entry closest to point, by Euclidean distance,
// as of the last Refresh. Equal distances go to the entry inserted first.
// ok is false when nothing is tracked.
func (idx *Index[K]) Nearest(point common.Vec2) (Candidate[K], bool) {
	if len(idx.entries) == 0 {
		return Candidate[K]{}, false
	}

	r := float64(initialQueryRadius)
	for {
		best, bestDist := idx.nearestWithin(point, r)
		// a hit in the box corner may be beaten by one just outside the box,
		// so only a hit inside the circle is final
		if best != nil && bestDist <= r {
			return Candidate[K]{Ref: best.ref, Pos: best.indexed, Distance: bestDist}, true
		}
		if best != nil {
			r = bestDist
		} else {
			r *= 2
		}
		if math.IsInf(r, 1) || math.IsNaN(r) {
			return Candidate[K]{}, false
		}
	}
}

const initialQueryRadius = 64

func (idx *Index[K]) nearestWithin(point common.Vec2, r float64) (*entry[K], float64) {
	var (
		best     *entry[K]
		bestDist = math.Inf(1)
	)
	idx.space.BBQuery(cp.NewBBForCircle(toVector(point), r), cp.SHAPE_FILTER_ALL,
		func(shape *cp.Shape, _ interface{}) {
			e, ok := shape.UserData.(*entry[K])
			if !ok || e == nil {
				return
			}
			d := math.Hypot(e.indexed.X-point.X, e.indexed.Y-point.Y)
			if best == nil || d < bestDist || (d == bestDist && e.seq < best.seq) {
				best = e
				bestDist = d
			}
		}, nil)
	return best, bestDist
}

func toVector(p common.Vec2) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// DebugDraw renders the indexed positions through a chipmunk drawer.
func (idx *Index[K]) DebugDraw(d cp.Drawer) {
	cp.DrawSpace(idx.space, d)
}
