package core

// Size describes the dimensions of a playfield in logical units.
type Size struct {
	W float64
	H float64
}

// Rect is an axis-aligned rectangle with float edges. Top is smaller than
// Bottom; y grows downwards.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH builds a Rect from its top-left corner and dimensions.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return r.Left + r.Width()/2 }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Left >= r.Right || r.Top >= r.Bottom }

// Intersects reports whether r and o overlap with positive area. Touching
// edges and empty rectangles never intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}
