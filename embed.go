package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cosmosraiders/assets"
	"github.com/milk9111/cosmosraiders/collision"
)

// loadSpriteCells slices the embedded sheet into one ebiten image per sprite
// index, in the same row-major order the collision matrices use.
func loadSpriteCells() []*ebiten.Image {
	img, err := assets.SpriteSheet()
	if err != nil {
		log.Fatalf("embed: decode %s: %v", assets.SpriteSheetPath, err)
	}
	sheet := ebiten.NewImageFromImage(img)

	l := collision.DefaultLayout
	cells := make([]*ebiten.Image, 0, l.Count())
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			r := image.Rect(col*l.CellW, row*l.CellH, (col+1)*l.CellW, (row+1)*l.CellH)
			cells = append(cells, sheet.SubImage(r).(*ebiten.Image))
		}
	}
	return cells
}
