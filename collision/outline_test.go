package collision

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func filledSquare(w, h, x0, y0, size int) Mask {
	m := NewMask(w, h)
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

func TestOutlineHollowsFilledSquare(t *testing.T) {
	m := filledSquare(32, 32, 10, 10, 4)
	out := Outline(m)

	for y := 10; y < 14; y++ {
		for x := 10; x < 14; x++ {
			border := x == 10 || x == 13 || y == 10 || y == 13
			if out.At(x, y) != border {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, out.At(x, y), border)
			}
		}
	}
	if out.Count() != 12 {
		t.Fatalf("expected 12 ring pixels, got %d", out.Count())
	}
}

func TestOutlineIdempotent(t *testing.T) {
	cases := []struct {
		name string
		mask Mask
	}{
		{"square", filledSquare(32, 32, 10, 10, 4)},
		{"big_square", filledSquare(32, 32, 2, 2, 28)},
		{"touching_edge", filledSquare(8, 8, 0, 0, 5)},
		{"single_pixel", filledSquare(4, 4, 1, 1, 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			once := Outline(c.mask)
			twice := Outline(once)
			if !once.Equal(twice) {
				t.Fatalf("outline not idempotent: %d pixels then %d", once.Count(), twice.Count())
			}
		})
	}
}

func TestOutlineEdgeNeighboursDoNotCount(t *testing.T) {
	full := filledSquare(4, 4, 0, 0, 4)
	if n := Outline(full).Count(); n != 0 {
		t.Fatalf("a fully on mask should reduce to nothing, got %d pixels", n)
	}

	// The corner of a 5x5 block in the top-left keeps its inner edge only.
	m := filledSquare(8, 8, 0, 0, 5)
	out := Outline(m)
	if out.At(0, 0) {
		t.Fatalf("(0,0) has every in-bounds neighbour on and should be dropped")
	}
	if !out.At(4, 0) || !out.At(0, 4) {
		t.Fatalf("pixels next to the off region should be kept")
	}
}

func TestSliceSheet(t *testing.T) {
	layout := SheetLayout{Cols: 2, Rows: 2, CellW: 4, CellH: 4}
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	// one opaque pixel per cell at (cell index, cell index) inside the cell
	for i := 0; i < 4; i++ {
		ox := (i % 2) * 4
		oy := (i / 2) * 4
		img.SetNRGBA(ox+i, oy+i, color.NRGBA{A: 1})
	}
	// transparent but coloured pixel should stay off
	img.SetNRGBA(3, 0, color.NRGBA{R: 0xff})

	masks, err := SliceSheet(img, layout)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if len(masks) != 4 {
		t.Fatalf("expected 4 masks, got %d", len(masks))
	}
	for i, m := range masks {
		if m.Count() != 1 || !m.At(i, i) {
			t.Fatalf("mask %d: expected only (%d,%d) on, count=%d", i, i, i, m.Count())
		}
	}
}

func TestSliceSheetRejectsWrongSize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 255, 64))
	_, err := SliceSheet(img, DefaultLayout)
	if !errors.Is(err, ErrSheetDimensions) {
		t.Fatalf("expected ErrSheetDimensions, got %v", err)
	}
}
