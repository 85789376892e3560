package main

import (
	"errors"
	"flag"
	"log"

	"github.com/milk9111/cosmosraiders/collision"
	"github.com/milk9111/cosmosraiders/common"
)

func main() {
	var opts options
	flag.StringVar(&opts.Sheet, "sheet", "assets/sprites.png", "sprite sheet to slice (png, bmp or webp)")
	flag.StringVar(&opts.Out, "out", "assets/sprite_collision_matrices.bin", "where to write the packed outline blob")
	flag.StringVar(&opts.Debug, "debug", "", "optional png to write the outlines to")
	flag.IntVar(&opts.Layout.Cols, "cols", common.SpriteCols, "sheet columns")
	flag.IntVar(&opts.Layout.Rows, "rows", common.SpriteRows, "sheet rows")
	flag.IntVar(&opts.Layout.CellW, "w", common.SpriteW, "cell width in pixels")
	flag.IntVar(&opts.Layout.CellH, "h", common.SpriteH, "cell height in pixels")
	watch := flag.Bool("watch", false, "rebuild whenever the sheet changes")
	flag.Parse()

	if err := build(opts); err != nil {
		if errors.Is(err, collision.ErrSheetDimensions) {
			log.Fatalf("outline: %v (check -cols/-rows/-w/-h)", err)
		}
		log.Fatalf("outline: %v", err)
	}
	if !*watch {
		return
	}
	if err := watchSheet(opts); err != nil {
		log.Fatalf("outline: watch: %v", err)
	}
}
