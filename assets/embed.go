package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"
)

const (
	// SpriteSheetPath is the 8x2 grid of 32x32 cells every sprite index refers to.
	SpriteSheetPath = "sprites.png"
	// CollisionBlobPath is produced from SpriteSheetPath by cmd/outline.
	CollisionBlobPath = "sprite_collision_matrices.bin"
)

//go:embed sprites.png sprite_collision_matrices.bin
var assetsFS embed.FS

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// LoadImage decodes an embedded image asset by assets-relative path.
func LoadImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

// SpriteSheet decodes the embedded sprite sheet.
func SpriteSheet() (image.Image, error) {
	return LoadImage(SpriteSheetPath)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
