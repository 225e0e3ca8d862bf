package androidutil

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestRect(t *testing.T) {
	var r Rect
	if !r.Empty() {
		t.Error("zero Rect should be empty")
	}
	r.Set(1, 2, 11, 22)
	if r.Width() != 10 || r.Height() != 20 {
		t.Errorf("size = %vx%v", r.Width(), r.Height())
	}
	if r.CenterX() != 6 || r.CenterY() != 12 {
		t.Errorf("center = (%v, %v)", r.CenterX(), r.CenterY())
	}
	r.Inset(1, 2)
	if want := (Rect{2, 4, 10, 20}); r != want {
		t.Errorf("Inset() = %+v, want %+v", r, want)
	}
	r.Offset(-2, -4)
	if want := (Rect{0, 0, 8, 16}); r != want {
		t.Errorf("Offset() = %+v, want %+v", r, want)
	}
	if !r.Contains(0, 0) || r.Contains(8, 0) {
		t.Error("Contains() should include left/top and exclude right/bottom")
	}
}

func TestRectImage(t *testing.T) {
	r := Rect{0.5, -0.5, 10.1, 9.9}
	if got, want := r.Image(), image.Rect(0, -1, 11, 10); got != want {
		t.Errorf("Image() = %v, want %v", got, want)
	}
	if got := RectOf(image.Rect(1, 2, 3, 4)); got != (Rect{1, 2, 3, 4}) {
		t.Errorf("RectOf() = %+v", got)
	}
}

func TestRectFixed(t *testing.T) {
	r := Rect{1.25, 0, 32.0625, 2}
	got := r.Fixed()
	want := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixed.Int26_6(1<<6 | 1<<4), Y: 0},
		Max: fixed.Point26_6{X: fixed.Int26_6(32<<6 | 1<<2), Y: fixed.I(2)},
	}
	if got != want {
		t.Errorf("Fixed() = %v, want %v", got, want)
	}
}

func TestMetricsDpRect(t *testing.T) {
	m := Metrics{Density: 1.5}
	got := m.DpRect(Rect{0, 1, 10, 10.1})
	if want := image.Rect(0, 2, 15, 16); got != want {
		t.Errorf("DpRect() = %v, want %v", got, want)
	}
}
