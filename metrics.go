package androidutil

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/exp/shiny/unit"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/geom"
)

// DefaultDensity is px per dp on a baseline (mdpi, 160dpi) screen.
const DefaultDensity = 1.0

// ErrInvalidDensity is returned when density is not a positive finite number.
var ErrInvalidDensity = errors.New("density must be positive finite number")

// Metrics describes the display a UI is laid out for.
// It is a plain value: build it once when the platform reports the display,
// and pass it to whoever converts sizes.
//
// The zero value has DefaultDensity and an empty display.
type Metrics struct {
	// Density is device pixels per density independent pixel (dp).
	// Zero means DefaultDensity.
	Density float32

	// DisplaySize is the display width and height in device pixels.
	DisplaySize image.Point
}

// DefaultMetrics returns Metrics with DefaultDensity and display size (0, 0).
func DefaultMetrics() Metrics {
	return Metrics{Density: DefaultDensity}
}

// NewMetrics returns Metrics after validating density.
func NewMetrics(density float32, displaySize image.Point) (Metrics, error) {
	if err := validDensity(density); err != nil {
		return Metrics{}, err
	}
	return Metrics{Density: density, DisplaySize: displaySize}, nil
}

func validDensity(d float32) error {
	f := float64(d)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDensity, d)
	}
	return nil
}

// PxPerDp returns Density, or DefaultDensity when Density is zero.
// This is the factor Dp converts with.
func (m Metrics) PxPerDp() float32 {
	if m.Density == 0 {
		return DefaultDensity
	}
	return m.Density
}

// Dp converts value in dp into device pixels.
// The result is rounded toward positive infinity, so Dp(-1.5) is -1 on density 1.
// Zero always converts to zero regardless of density.
// The result for NaN or infinite value is undefined.
func (m Metrics) Dp(value float32) int {
	if value == 0 {
		return 0
	}
	return int(math.Ceil(float64(m.PxPerDp() * value)))
}

// ToDp converts device pixels into dp.
func (m Metrics) ToDp(px int) float32 {
	return float32(px) / m.PxPerDp()
}

// DisplaySizeDp returns DisplaySize in dp.
func (m Metrics) DisplaySizeDp() (width, height float32) {
	return m.ToDp(m.DisplaySize.X), m.ToDp(m.DisplaySize.Y)
}

// DPI returns device pixels per inch.
func (m Metrics) DPI() float64 {
	return float64(m.PxPerDp()) * unit.DensityIndependentPixelsPerInch
}

// PixelsPerPt returns device pixels per typographic point.
func (m Metrics) PixelsPerPt() float32 {
	return float32(m.DPI() / unit.PointsPerInch)
}

// FromDPI builds Metrics from the dots per inch of a display.
func FromDPI(dpi float64, displaySize image.Point) Metrics {
	return Metrics{
		Density:     float32(dpi / unit.DensityIndependentPixelsPerInch),
		DisplaySize: displaySize,
	}
}

// FromSizeEvent builds Metrics from a golang.org/x/mobile size event.
func FromSizeEvent(e size.Event) Metrics {
	return FromDPI(float64(e.PixelsPerPt)*unit.PointsPerInch, e.Size())
}

// SizeEvent builds the golang.org/x/mobile size event describing m.
func (m Metrics) SizeEvent() size.Event {
	pxPerPt := m.PixelsPerPt()
	orientation := size.OrientationPortrait
	if m.DisplaySize.X > m.DisplaySize.Y {
		orientation = size.OrientationLandscape
	}
	return size.Event{
		WidthPx:     m.DisplaySize.X,
		HeightPx:    m.DisplaySize.Y,
		WidthPt:     geom.Pt(float32(m.DisplaySize.X) / pxPerPt),
		HeightPt:    geom.Pt(float32(m.DisplaySize.Y) / pxPerPt),
		PixelsPerPt: pxPerPt,
		Orientation: orientation,
	}
}

// ErrFontRelativeUnit is returned by Pixels for em, ex and ch,
// which need a font face rather than a display.
var ErrFontRelativeUnit = errors.New("font relative unit can not be converted by display metrics")

// Pixels converts a physical length into device pixels.
func (m Metrics) Pixels(v unit.Value) (float64, error) {
	dpi := m.DPI()
	switch v.U {
	case unit.Px:
		return v.F, nil
	case unit.Dp:
		return v.F * float64(m.PxPerDp()), nil
	case unit.Pt:
		return v.F * dpi / unit.PointsPerInch, nil
	case unit.Mm:
		return v.F * dpi / unit.MillimetresPerInch, nil
	case unit.In:
		return v.F * dpi, nil
	case unit.Em, unit.Ex, unit.Ch:
		return 0, fmt.Errorf("%w: %v", ErrFontRelativeUnit, v)
	}
	return 0, fmt.Errorf("unknown unit: %v", v)
}
