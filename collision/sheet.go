package collision

import (
	"errors"
	"fmt"
	"image"

	"github.com/milk9111/cosmosraiders/common"
)

var ErrSheetDimensions = errors.New("collision: sprite sheet dimensions do not match layout")

// SheetLayout describes how a sprite sheet is divided into cells.
type SheetLayout struct {
	Cols, Rows   int
	CellW, CellH int
}

// DefaultLayout is the layout of assets/sprites.png.
var DefaultLayout = SheetLayout{
	Cols:  common.SpriteCols,
	Rows:  common.SpriteRows,
	CellW: common.SpriteW,
	CellH: common.SpriteH,
}

// Count returns the number of cells.
func (l SheetLayout) Count() int {
	return l.Cols * l.Rows
}

// Size returns the sheet size in pixels the layout expects.
func (l SheetLayout) Size() (int, int) {
	return l.Cols * l.CellW, l.Rows * l.CellH
}

// SliceSheet splits img into Count() masks, row-major (index = row*Cols + col).
// A pixel is on iff its alpha is non-zero.
func SliceSheet(img image.Image, layout SheetLayout) ([]Mask, error) {
	b := img.Bounds()
	w, h := layout.Size()
	if layout.Cols <= 0 || layout.Rows <= 0 || b.Dx() != w || b.Dy() != h {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d (%dx%d cells of %dx%d)",
			ErrSheetDimensions, b.Dx(), b.Dy(), w, h, layout.Cols, layout.Rows, layout.CellW, layout.CellH)
	}

	isOpaque := func(x, y int) bool {
		_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
		return a != 0
	}

	masks := make([]Mask, 0, layout.Count())
	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Cols; col++ {
			m := NewMask(layout.CellW, layout.CellH)
			for y := 0; y < layout.CellH; y++ {
				for x := 0; x < layout.CellW; x++ {
					m.Pix[y*m.W+x] = isOpaque(col*layout.CellW+x, row*layout.CellH+y)
				}
			}
			masks = append(masks, m)
		}
	}
	return masks, nil
}
