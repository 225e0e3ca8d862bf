package androidutil

import (
	"sync"

	"github.com/noteui/androidutil/util/log"
)

// MetricsListener is notified when the Metrics held by a Display change.
type MetricsListener interface {
	OnMetricsChanged(old, new Metrics)
}

// MetricsListenerFunc adapts a function to MetricsListener.
type MetricsListenerFunc func(old, new Metrics)

func (fn MetricsListenerFunc) OnMetricsChanged(old, new Metrics) { fn(old, new) }

// Display owns the current Metrics of a UI. The platform writes it when the
// display is measured or reconfigured, and everything else reads it.
// Concurrent use is OK.
type Display struct {
	mu        sync.RWMutex
	metrics   Metrics
	listeners map[int]MetricsListener
	nextID    int
}

// Default is the Display used by the package level functions.
var Default = NewDisplay(DefaultMetrics())

// NewDisplay returns a Display holding m, with no listeners.
func NewDisplay(m Metrics) *Display {
	return &Display{
		metrics:   m,
		listeners: make(map[int]MetricsListener),
	}
}

// Metrics returns a copy of the current metrics.
func (d *Display) Metrics() Metrics {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.metrics
}

// SetMetrics replaces the current metrics and notifies listeners.
// It returns false, without notification, when m equals the current metrics.
func (d *Display) SetMetrics(m Metrics) bool {
	d.mu.Lock()
	old := d.metrics
	if old == m {
		d.mu.Unlock()
		return false
	}
	d.metrics = m
	listeners := make([]MetricsListener, 0, len(d.listeners))
	for _, l := range d.listeners {
		listeners = append(listeners, l)
	}
	d.mu.Unlock()

	log.Debugf("Display: metrics changed %+v -> %+v", old, m)
	for _, l := range listeners {
		l.OnMetricsChanged(old, m)
	}
	return true
}

// Reconfigure applies Reconfigure to the display and returns the new metrics.
func (d *Display) Reconfigure(info DisplayInfo, screen *ScreenConfig) Metrics {
	m := Reconfigure(info, screen)
	d.SetMetrics(m)
	return m
}

// AddListener registers l and returns the function to unregister it.
func (d *Display) AddListener(l MetricsListener) (remove func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = l
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners, id)
	}
}

// Dp converts value in dp into device pixels by the current metrics.
func (d *Display) Dp(value float32) int {
	return d.Metrics().Dp(value)
}

// Density returns the current density, DefaultDensity when unset.
func (d *Display) Density() float32 {
	return d.Metrics().PxPerDp()
}

// Dp converts value in dp into device pixels using Default.
func Dp(value float32) int {
	return Default.Dp(value)
}

// DisplaySize returns the display size of Default.
func DisplaySize() (width, height int) {
	s := Default.Metrics().DisplaySize
	return s.X, s.Y
}

// Density returns the density of Default.
func Density() float32 {
	return Default.Density()
}
