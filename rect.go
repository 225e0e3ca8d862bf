package androidutil

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

// Rect is a rectangle in float coordinates.
// It is a value: keep one per call site instead of sharing a scratch
// rectangle between call sites. Methods with pointer receiver
// modify the Rect in place, so a Rect must not be mutated concurrently.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// RectOf converts an integer rectangle.
func RectOf(r image.Rectangle) Rect {
	return Rect{
		Left:   float32(r.Min.X),
		Top:    float32(r.Min.Y),
		Right:  float32(r.Max.X),
		Bottom: float32(r.Max.Y),
	}
}

// Set replaces all four edges.
func (r *Rect) Set(left, top, right, bottom float32) {
	r.Left, r.Top, r.Right, r.Bottom = left, top, right, bottom
}

// Inset moves the edges inward by dx and dy. Negative values outset.
func (r *Rect) Inset(dx, dy float32) {
	r.Left += dx
	r.Top += dy
	r.Right -= dx
	r.Bottom -= dy
}

// Offset moves the rectangle by dx and dy.
func (r *Rect) Offset(dx, dy float32) {
	r.Left += dx
	r.Right += dx
	r.Top += dy
	r.Bottom += dy
}

func (r Rect) Width() float32   { return r.Right - r.Left }
func (r Rect) Height() float32  { return r.Bottom - r.Top }
func (r Rect) CenterX() float32 { return (r.Left + r.Right) * 0.5 }
func (r Rect) CenterY() float32 { return (r.Top + r.Bottom) * 0.5 }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Contains reports whether (x, y) is inside r, the right and bottom edges excluded.
func (r Rect) Contains(x, y float32) bool {
	return r.Left <= x && x < r.Right && r.Top <= y && y < r.Bottom
}

// Image returns the smallest integer rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.Left))),
		int(math.Floor(float64(r.Top))),
		int(math.Ceil(float64(r.Right))),
		int(math.Ceil(float64(r.Bottom))),
	)
}

// Fixed returns r in 26.6 fixed point, as used by golang.org/x/image/font.
func (r Rect) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: toFixed(r.Left), Y: toFixed(r.Top)},
		Max: fixed.Point26_6{X: toFixed(r.Right), Y: toFixed(r.Bottom)},
	}
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

// DpRect converts r given in dp into device pixels, with each edge
// rounded by Metrics.Dp.
func (m Metrics) DpRect(r Rect) image.Rectangle {
	return image.Rect(m.Dp(r.Left), m.Dp(r.Top), m.Dp(r.Right), m.Dp(r.Bottom))
}
