package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmosraiders/common"
)

// indexDrawer draws what the spatial index believes: a cross and a sprite-sized
// box at every indexed position. Between refreshes these trail the sprites.
type indexDrawer struct {
	screen *ebiten.Image
}

func (d *indexDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	c := fcolorToRGBA(outline)
	x, y := toScreen(common.Vec2{X: pos.X, Y: pos.Y})
	w, h := float64(common.SpriteW), float64(common.SpriteH)
	ebitenutil.DrawLine(d.screen, x, y, x+w, y, c)
	ebitenutil.DrawLine(d.screen, x+w, y, x+w, y+h, c)
	ebitenutil.DrawLine(d.screen, x+w, y+h, x, y+h, c)
	ebitenutil.DrawLine(d.screen, x, y+h, x, y, c)
	d.DrawDot(6, pos, fill, data)
}

func (d *indexDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {}

func (d *indexDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
}

func (d *indexDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
}

func (d *indexDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	c := fcolorToRGBA(fill)
	x, y := toScreen(common.Vec2{X: pos.X, Y: pos.Y})
	x += common.SpriteHalfW
	y += common.SpriteHalfH
	l := size / 2
	ebitenutil.DrawLine(d.screen, x-l, y, x+l, y, c)
	ebitenutil.DrawLine(d.screen, x, y-l, x, y+l, c)
}

func (d *indexDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *indexDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

func (d *indexDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
}

func (d *indexDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *indexDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *indexDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
