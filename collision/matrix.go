package collision

import (
	"errors"
	"fmt"
	"sync"

	"github.com/milk9111/cosmosraiders/assets"
	"github.com/milk9111/cosmosraiders/common"
)

const (
	BitsPerMatrix = common.SpriteW * common.SpriteH
	BlobSize      = (common.SpriteN*BitsPerMatrix + 7) / 8
)

var ErrBlobSize = errors.New("collision: blob size does not match sprite constants")

// Unpack rebuilds the matrices from a blob written by Pack.
func Unpack(blob []byte) (*Matrices, error) {
	if len(blob) != BlobSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrBlobSize, len(blob), BlobSize)
	}
	ms := &Matrices{}
	for sprite := range ms {
		for i := 0; i < BitsPerMatrix; i++ {
			bit := sprite*BitsPerMatrix + i
			if blob[bit/8]&(1<<(bit%8)) == 0 {
				continue
			}
			ms[sprite][i/common.SpriteW][i%common.SpriteW] = true
		}
	}
	return ms, nil
}

// MustUnpack is Unpack for blobs that are known good at build time.
func MustUnpack(blob []byte) *Matrices {
	ms, err := Unpack(blob)
	if err != nil {
		panic(err)
	}
	return ms
}

var (
	loadOnce sync.Once
	loaded   *Matrices
)

// Load unpacks the embedded blob. The first call does the work; later calls
// return the same read-only matrices.
func Load() *Matrices {
	loadOnce.Do(func() {
		blob, err := assets.LoadFile(assets.CollisionBlobPath)
		if err != nil {
			panic(fmt.Sprintf("collision: read embedded blob: %v", err))
		}
		loaded = MustUnpack(blob)
	})
	return loaded
}
