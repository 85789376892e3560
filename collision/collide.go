package collision

import (
	"fmt"
	"math"

	"github.com/milk9111/cosmosraiders/common"
)

// Stats counts how far Detector calls got.
type Stats struct {
	BroadPhaseRejects int
	NarrowPhaseChecks int
	Hits              int
}

// Detector wraps a set of matrices and keeps Stats across calls.
type Detector struct {
	Matrices *Matrices
	Stats    Stats
}

func NewDetector(ms *Matrices) *Detector {
	return &Detector{Matrices: ms}
}

// Collide is Collide against d.Matrices.
func (d *Detector) Collide(a, b int, posA, posB common.Vec2) bool {
	return collide(d.Matrices, a, b, posA, posB, &d.Stats)
}

// Collide reports whether sprites a and b, centered at posA and posB, share an
// on pixel. Boxes that only touch along an edge never collide. An out-of-range
// sprite index panics.
func Collide(ms *Matrices, a, b int, posA, posB common.Vec2) bool {
	return collide(ms, a, b, posA, posB, nil)
}

func collide(ms *Matrices, a, b int, posA, posB common.Vec2, stats *Stats) bool {
	am := ms.matrix(a)
	bm := ms.matrix(b)

	aMin := common.Vec2{X: posA.X - common.SpriteHalfW, Y: posA.Y - common.SpriteHalfH}
	aMax := common.Vec2{X: posA.X + common.SpriteHalfW, Y: posA.Y + common.SpriteHalfH}
	bMin := common.Vec2{X: posB.X - common.SpriteHalfW, Y: posB.Y - common.SpriteHalfH}
	bMax := common.Vec2{X: posB.X + common.SpriteHalfW, Y: posB.Y + common.SpriteHalfH}

	if aMax.X <= bMin.X || aMin.X >= bMax.X || aMax.Y <= bMin.Y || aMin.Y >= bMax.Y {
		if stats != nil {
			stats.BroadPhaseRejects++
		}
		return false
	}
	if stats != nil {
		stats.NarrowPhaseChecks++
	}

	startX := math.Ceil(math.Max(aMin.X, bMin.X))
	startY := math.Ceil(math.Max(aMin.Y, bMin.Y))
	endX := math.Floor(math.Min(aMax.X, bMax.X))
	endY := math.Floor(math.Min(aMax.Y, bMax.Y))

	width := int(endX - startX)
	height := int(endY - startY)
	if width <= 0 || height <= 0 {
		return false
	}

	axLocal := localOffset(startX, aMin.X)
	ayLocal := localOffset(startY, aMin.Y)
	bxLocal := localOffset(startX, bMin.X)
	byLocal := localOffset(startY, bMin.Y)

	for y := 0; y < height; y++ {
		aRow := &am[ayLocal+y]
		bRow := &bm[byLocal+y]
		for x := 0; x < width; x++ {
			if aRow[axLocal+x] && bRow[bxLocal+x] {
				if stats != nil {
					stats.Hits++
				}
				return true
			}
		}
	}
	return false
}

// localOffset maps a world pixel coordinate into a sprite's mask, clamped at zero.
func localOffset(world, boxMin float64) int {
	off := int(math.Floor(world - boxMin))
	if off < 0 {
		return 0
	}
	return off
}

func (ms *Matrices) matrix(i int) *Matrix {
	if i < 0 || i >= len(ms) {
		panic(fmt.Sprintf("collision: sprite index %d out of range [0, %d)", i, len(ms)))
	}
	return &ms[i]
}
