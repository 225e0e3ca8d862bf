package androidutil

import "testing"

func TestLerp(t *testing.T) {
	for _, tt := range []struct {
		a, b, f float32
		want    float32
	}{
		{0, 10, 0.5, 5},
		{0, 10, 2.0, 20},
		{0, 10, -1, -10},
		{3, -7, 0, 3},
		{3, -7, 1, -7},
		{-2.5, 2.5, 0.5, 0},
	} {
		if got := Lerp(tt.a, tt.b, tt.f); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.f, got, tt.want)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	for _, p := range [][2]float32{{0, 0}, {1, 2}, {-100, 100}, {0.25, 1e6}} {
		a, b := p[0], p[1]
		if got := Lerp(a, b, 0); got != a {
			t.Errorf("Lerp(%v, %v, 0) = %v", a, b, got)
		}
		if got := Lerp(a, b, 1); got != b {
			t.Errorf("Lerp(%v, %v, 1) = %v", a, b, got)
		}
	}
}

func TestLerpRect(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{10, 20, 30, 40}
	want := Rect{5, 10, 20, 25}
	if got := LerpRect(a, b, 0.5); got != want {
		t.Errorf("LerpRect() = %+v, want %+v", got, want)
	}
}
