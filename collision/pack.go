package collision

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var ErrMaskSize = errors.New("collision: masks differ in size")

// BlobLen returns the packed size of n masks of w x h bits.
func BlobLen(n, w, h int) int {
	return (n*w*h + 7) / 8
}

// Pack writes every mask into one bitset. Bit i of the stream is
// sprite*W*H + row*W + col and lands in byte i/8 at bit position i%8 (LSB first).
func Pack(masks []Mask) ([]byte, error) {
	if len(masks) == 0 {
		return nil, nil
	}
	w, h := masks[0].W, masks[0].H
	for i, m := range masks {
		if m.W != w || m.H != h || len(m.Pix) != w*h {
			return nil, fmt.Errorf("%w: mask %d is %dx%d, want %dx%d", ErrMaskSize, i, m.W, m.H, w, h)
		}
	}

	out := make([]byte, BlobLen(len(masks), w, h))
	bitsPerMask := w * h
	for sprite, m := range masks {
		for i, on := range m.Pix {
			if !on {
				continue
			}
			bit := sprite*bitsPerMask + i
			out[bit/8] |= 1 << (bit % 8)
		}
	}
	return out, nil
}

// Preprocess slices the sheet, reduces every cell to its outline and packs the result.
func Preprocess(img image.Image, layout SheetLayout) ([]byte, []Mask, error) {
	masks, err := SliceSheet(img, layout)
	if err != nil {
		return nil, nil, err
	}
	outlines := OutlineAll(masks)
	blob, err := Pack(outlines)
	if err != nil {
		return nil, nil, err
	}
	return blob, outlines, nil
}

// DebugImage lays the masks back out as a sheet: on pixels opaque white, off transparent.
func DebugImage(masks []Mask, layout SheetLayout) *image.NRGBA {
	w, h := layout.Size()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	on := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for i, m := range masks {
		if i >= layout.Count() {
			break
		}
		ox := (i % layout.Cols) * layout.CellW
		oy := (i / layout.Cols) * layout.CellH
		for y := 0; y < m.H && y < layout.CellH; y++ {
			for x := 0; x < m.W && x < layout.CellW; x++ {
				if m.Pix[y*m.W+x] {
					out.SetNRGBA(ox+x, oy+y, on)
				}
			}
		}
	}
	return out
}
