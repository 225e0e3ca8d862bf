package androidutil

import (
	"image"
	"math"
)

// ScreenDpUndefined marks an unknown dimension in ScreenConfig,
// as Configuration.SCREEN_WIDTH_DP_UNDEFINED does on Android.
const ScreenDpUndefined = 0

// displaySizeSlack is how far, in px, the window manager size may differ
// from the configured screen size before the latter replaces it.
const displaySizeSlack = 3

// DisplayInfo is what the window manager reports about the default display.
type DisplayInfo struct {
	Density float32
	Size    image.Point // in px
}

// ScreenConfig is the available screen size reported by a configuration change.
type ScreenConfig struct {
	WidthDp  int
	HeightDp int
}

// Reconfigure builds Metrics from the window manager report and an optional
// configuration. A configured dimension replaces the reported one only when
// they differ by more than displaySizeSlack pixels. A nil screen keeps the
// reported size.
func Reconfigure(info DisplayInfo, screen *ScreenConfig) Metrics {
	m := Metrics{Density: info.Density, DisplaySize: info.Size}
	if screen == nil {
		return m
	}
	density := float64(m.PxPerDp())
	if screen.WidthDp != ScreenDpUndefined {
		m.DisplaySize.X = preferConfigured(m.DisplaySize.X, screen.WidthDp, density)
	}
	if screen.HeightDp != ScreenDpUndefined {
		m.DisplaySize.Y = preferConfigured(m.DisplaySize.Y, screen.HeightDp, density)
	}
	return m
}

func preferConfigured(reportedPx, configuredDp int, density float64) int {
	px := int(math.Ceil(float64(configuredDp) * density))
	if d := reportedPx - px; d > displaySizeSlack || d < -displaySizeSlack {
		return px
	}
	return reportedPx
}
