package androidutil

// Lerp interpolates linearly between a and b by f.
// f is not clamped: values outside [0, 1] extrapolate beyond a and b.
func Lerp(a, b, f float32) float32 {
	return a + f*(b-a)
}

// LerpRect interpolates each edge of a and b by f.
func LerpRect(a, b Rect, f float32) Rect {
	return Rect{
		Left:   Lerp(a.Left, b.Left, f),
		Top:    Lerp(a.Top, b.Top, f),
		Right:  Lerp(a.Right, b.Right, f),
		Bottom: Lerp(a.Bottom, b.Bottom, f),
	}
}
