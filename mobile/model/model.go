// Package model exposes display metrics and text helpers to mobile platforms
// through gomobile bind. Only gomobile compatible types appear in its API.
package model

import (
	"fmt"
	"image"

	"golang.org/x/exp/shiny/unit"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/geom"

	"github.com/noteui/androidutil"
	"github.com/noteui/androidutil/app/config"
	"github.com/noteui/androidutil/filesystem"
	"github.com/noteui/androidutil/text"
	"github.com/noteui/androidutil/util/log"
)

// Values for Direction.
const (
	DirNeutral int32 = int32(text.Neutral)
	DirLTR     int32 = int32(text.LTR)
	DirRTL     int32 = int32(text.RTL)
)

var (
	display  = androidutil.Default
	dirCache = text.NewDirectionCache(0)
	// mobile can not detect east asian locale, so set it explicitly.
	widthCond = text.NewCondition(true)

	closeFunc   func()
	initialized = false
)

// Init loads the config under baseDir and sets up logging.
// Display metrics are not taken from the config, the platform reports
// them by OnMeasure or OnDisplayChanged.
func Init(baseDir string) error {
	if initialized {
		return fmt.Errorf("model already initialized")
	}

	mobileFS := filesystem.Mobile
	mobileFS.CurrentDir = baseDir
	filesystem.Default = mobileFS

	configPath, err := mobileFS.ResolvePath(config.ConfigFile)
	if err != nil {
		return fmt.Errorf("can not use base directory %v: %w", baseDir, err)
	}
	conf, err := config.LoadConfigOrDefault(configPath)
	switch err {
	case nil, config.ErrDefaultConfigGenerated:
	default:
		return fmt.Errorf("config load error: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	finalize, err := config.SetupLogConfig(conf)
	if err != nil {
		return fmt.Errorf("log configure error: %w", err)
	}
	closeFunc = finalize
	dirCache = text.NewDirectionCache(conf.DirectionCacheSize)
	initialized = true
	log.Infof("model: initialized at %s", baseDir)
	return nil
}

// Quit releases resources acquired by Init.
func Quit() {
	if !initialized {
		return
	}
	if closeFunc != nil {
		closeFunc()
		closeFunc = nil
	}
	initialized = false
}

// OnMeasure notifies the display size in px and its dots per inch.
func OnMeasure(widthPx, heightPx int32, dpi float64) {
	pxPerPt := float32(dpi / unit.PointsPerInch)
	m := androidutil.FromSizeEvent(size.Event{
		WidthPx:     int(widthPx),
		HeightPx:    int(heightPx),
		PixelsPerPt: pxPerPt,
		WidthPt:     geom.Pt(float32(widthPx) / pxPerPt),
		HeightPt:    geom.Pt(float32(heightPx) / pxPerPt),
	})
	display.SetMetrics(m)
}

// OnDisplayChanged notifies what the window manager reports and the screen
// size of the current configuration in dp, where 0 means undefined.
func OnDisplayChanged(density float32, widthPx, heightPx, screenWidthDp, screenHeightDp int32) {
	display.Reconfigure(
		androidutil.DisplayInfo{Density: density, Size: image.Pt(int(widthPx), int(heightPx))},
		&androidutil.ScreenConfig{WidthDp: int(screenWidthDp), HeightDp: int(screenHeightDp)},
	)
}

// MetricsCallback is implemented by the platform to follow metrics changes.
type MetricsCallback interface {
	OnMetricsChanged(density float32, widthPx, heightPx int32)
}

var removeCallback func()

// SetMetricsCallback replaces the callback. nil removes it.
func SetMetricsCallback(cb MetricsCallback) {
	if removeCallback != nil {
		removeCallback()
		removeCallback = nil
	}
	if cb == nil {
		return
	}
	removeCallback = display.AddListener(androidutil.MetricsListenerFunc(func(_, m androidutil.Metrics) {
		cb.OnMetricsChanged(m.PxPerDp(), int32(m.DisplaySize.X), int32(m.DisplaySize.Y))
	}))
}

func Dp(value float32) int32 { return int32(display.Dp(value)) }

func Lerp(a, b, f float32) float32 { return androidutil.Lerp(a, b, f) }

func IsRTL(s string) bool { return androidutil.IsRTL(s) }

// Direction returns one of DirNeutral, DirLTR and DirRTL.
func Direction(s string) int32 { return int32(dirCache.Direction(s)) }

func StringWidth(s string) int32 { return int32(widthCond.StringWidth(s)) }

// Density returns px per dp, DefaultDensity when the platform reported none.
func Density() float32 { return display.Density() }

func DisplayWidth() int32 { return int32(display.Metrics().DisplaySize.X) }

func DisplayHeight() int32 { return int32(display.Metrics().DisplaySize.Y) }
