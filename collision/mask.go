package collision

import "github.com/milk9111/cosmosraiders/common"

// Mask is a W x H boolean grid stored row-major. It is the preprocessing form of
// a sprite; the runtime uses the fixed-size Matrix instead.
type Mask struct {
	W, H int
	Pix  []bool
}

func NewMask(w, h int) Mask {
	return Mask{W: w, H: h, Pix: make([]bool, w*h)}
}

// At reports whether (x, y) is on. Coordinates outside the mask are off.
func (m Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.Pix[y*m.W+x]
}

func (m Mask) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.Pix[y*m.W+x] = on
}

// Count returns the number of on pixels.
func (m Mask) Count() int {
	n := 0
	for _, on := range m.Pix {
		if on {
			n++
		}
	}
	return n
}

func (m Mask) Equal(o Mask) bool {
	if m.W != o.W || m.H != o.H || len(m.Pix) != len(o.Pix) {
		return false
	}
	for i := range m.Pix {
		if m.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// Matrix is the outline mask of one sprite, indexed [row][col].
type Matrix [common.SpriteH][common.SpriteW]bool

// Matrices holds one Matrix per sprite-sheet cell. It is never mutated after load.
type Matrices [common.SpriteN]Matrix

// Mask copies the matrix into a Mask.
func (m *Matrix) Mask() Mask {
	out := NewMask(common.SpriteW, common.SpriteH)
	for row := 0; row < common.SpriteH; row++ {
		for col := 0; col < common.SpriteW; col++ {
			out.Pix[row*common.SpriteW+col] = m[row][col]
		}
	}
	return out
}

// Masks returns every matrix as a Mask, in sprite order.
func (ms *Matrices) Masks() []Mask {
	out := make([]Mask, len(ms))
	for i := range ms {
		out[i] = ms[i].Mask()
	}
	return out
}
