package render

import (
	"image"
	"math"

	"bat-pong/internal/core"
)

// PixelRect converts a playfield rectangle into integer pixels at the given
// scale. Non-empty rectangles always cover at least one pixel so small
// entities stay visible.
func PixelRect(r core.Rect, scale float64) image.Rectangle {
	if scale <= 0 {
		scale = 1
	}
	if r.Empty() {
		return image.Rectangle{}
	}
	x0 := int(math.Round(r.Left * scale))
	y0 := int(math.Round(r.Top * scale))
	x1 := int(math.Round(r.Right * scale))
	y1 := int(math.Round(r.Bottom * scale))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return image.Rect(x0, y0, x1, y1)
}
