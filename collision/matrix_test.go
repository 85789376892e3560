package collision

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/milk9111/cosmosraiders/assets"
	"github.com/milk9111/cosmosraiders/common"
)

func randomMatrices(seed int64) *Matrices {
	r := rand.New(rand.NewSource(seed))
	ms := &Matrices{}
	for s := range ms {
		for y := 0; y < common.SpriteH; y++ {
			for x := 0; x < common.SpriteW; x++ {
				ms[s][y][x] = r.Intn(3) == 0
			}
		}
	}
	return ms
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1337} {
		want := randomMatrices(seed)
		blob, err := Pack(want.Masks())
		if err != nil {
			t.Fatalf("pack: %v", err)
		}
		if len(blob) != BlobSize {
			t.Fatalf("expected %d bytes, got %d", BlobSize, len(blob))
		}
		got, err := Unpack(blob)
		if err != nil {
			t.Fatalf("unpack: %v", err)
		}
		if *got != *want {
			t.Fatalf("seed %d: round trip changed the matrices", seed)
		}
	}
}

func TestPackBitOrder(t *testing.T) {
	ms := &Matrices{}
	// sprite 1, row 2, col 3 -> bit 1*1024 + 2*32 + 3 = 1091 -> byte 136, bit 3
	ms[1][2][3] = true
	blob, err := Pack(ms.Masks())
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	for i, b := range blob {
		want := byte(0)
		if i == 136 {
			want = 1 << 3
		}
		if b != want {
			t.Fatalf("byte %d: got %08b, want %08b", i, b, want)
		}
	}
}

func TestPackRejectsMixedSizes(t *testing.T) {
	_, err := Pack([]Mask{NewMask(4, 4), NewMask(4, 5)})
	if !errors.Is(err, ErrMaskSize) {
		t.Fatalf("expected ErrMaskSize, got %v", err)
	}
}

func TestUnpackRejectsWrongSize(t *testing.T) {
	_, err := Unpack(make([]byte, BlobSize-1))
	if !errors.Is(err, ErrBlobSize) {
		t.Fatalf("expected ErrBlobSize, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("MustUnpack should panic on a short blob")
		}
	}()
	MustUnpack(nil)
}

func TestLoadEmbeddedBlob(t *testing.T) {
	ms := Load()
	if ms == nil {
		t.Fatalf("Load returned nil")
	}
	if Load() != ms {
		t.Fatalf("Load should return the same matrices on every call")
	}
	// laser (2) and the low-level alien (1) both have outlines
	for _, i := range []int{1, 2} {
		m := ms[i].Mask()
		if m.Count() == 0 {
			t.Fatalf("sprite %d has an empty outline", i)
		}
	}
}

func TestPreprocessReproducesEmbeddedBlob(t *testing.T) {
	sheet, err := assets.SpriteSheet()
	if err != nil {
		t.Fatalf("sheet: %v", err)
	}
	blob, outlines, err := Preprocess(sheet, DefaultLayout)
	if err != nil {
		t.Fatalf("preprocess: %v", err)
	}
	if len(outlines) != common.SpriteN {
		t.Fatalf("expected %d outlines, got %d", common.SpriteN, len(outlines))
	}
	want, err := assets.LoadFile(assets.CollisionBlobPath)
	if err != nil {
		t.Fatalf("blob: %v", err)
	}
	if !bytes.Equal(blob, want) {
		t.Fatalf("preprocessed sheet differs from the committed blob; rerun cmd/outline")
	}
}

func TestDebugImage(t *testing.T) {
	layout := SheetLayout{Cols: 2, Rows: 1, CellW: 4, CellH: 4}
	a := NewMask(4, 4)
	b := NewMask(4, 4)
	a.Set(1, 2, true)
	b.Set(3, 3, true)

	img := DebugImage([]Mask{a, b}, layout)
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if img.NRGBAAt(1, 2).A != 0xff || img.NRGBAAt(7, 3).A != 0xff {
		t.Fatalf("expected on pixels to be opaque")
	}
	if img.NRGBAAt(0, 0).A != 0 {
		t.Fatalf("expected off pixels to be transparent")
	}
}
