//go:build ebiten

package render

import (
	"image/color"

	"bat-pong/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// RectPainter fills axis-aligned rectangles by stretching a single white
// pixel.
type RectPainter struct {
	pixel *ebiten.Image
	scale float64
}

// NewRectPainter allocates a painter drawing at the provided scale.
func NewRectPainter(scale int) *RectPainter {
	if scale <= 0 {
		scale = 1
	}
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &RectPainter{pixel: px, scale: float64(scale)}
}

// Fill paints r onto dst in the given colour.
func (p *RectPainter) Fill(dst *ebiten.Image, r core.Rect, c color.Color) {
	px := PixelRect(r, p.scale)
	if px.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(px.Dx()), float64(px.Dy()))
	op.GeoM.Translate(float64(px.Min.X), float64(px.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(p.pixel, op)
}
