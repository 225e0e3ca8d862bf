// Package gio converts display metrics to and from gioui.org/unit.
//
// Note that gio rounds dp to the nearest pixel, while androidutil.Metrics.Dp
// rounds up.
package gio

import (
	"gioui.org/unit"

	"github.com/noteui/androidutil"
)

// Metric returns the gio metric for m. fontScale is the user preference
// for text size, 1 when unset or not positive.
func Metric(m androidutil.Metrics, fontScale float32) unit.Metric {
	if fontScale <= 0 {
		fontScale = 1
	}
	d := m.PxPerDp()
	return unit.Metric{
		PxPerDp: d,
		PxPerSp: d * fontScale,
	}
}

// FontScale returns the ratio of sp to dp in c.
func FontScale(c unit.Metric) float32 {
	if c.PxPerDp == 0 || c.PxPerSp == 0 {
		return 1
	}
	return c.PxPerSp / c.PxPerDp
}
