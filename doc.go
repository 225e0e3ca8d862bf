/*
Package androidutil converts sizes between density independent pixels (dp)
and device pixels, and offers small helpers a mobile UI layer needs around
that: linear interpolation, float rectangles and a right to left text check.

Metrics is the immutable description of a display. A Display holds the
current Metrics for a running UI and notifies listeners when the platform
reports a new one:

	d := androidutil.NewDisplay(androidutil.FromDPI(480, image.Pt(1080, 1920)))
	padding := d.Dp(16) // 48

The package level functions use Default.
*/
package androidutil
