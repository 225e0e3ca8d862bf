package model

import (
	"bytes"
	"fmt"
	"image"

	"github.com/ugorji/go/codec"

	"github.com/noteui/androidutil"
)

// snapshot is the serialized form of the metrics, so that the platform can
// keep the last known display across process restarts.
type snapshot struct {
	Density float32 `codec:"density"`
	Width   int     `codec:"width"`
	Height  int     `codec:"height"`
}

var codecHandler = &codec.MsgpackHandle{}

// MetricsSnapshot serializes the current metrics in msgpack.
func MetricsSnapshot() ([]byte, error) {
	m := display.Metrics()
	s := snapshot{Density: m.PxPerDp(), Width: m.DisplaySize.X, Height: m.DisplaySize.Y}
	buf := new(bytes.Buffer)
	if err := codec.NewEncoder(buf, codecHandler).Encode(s); err != nil {
		return nil, fmt.Errorf("encode metrics: %w", err)
	}
	return buf.Bytes(), nil
}

// RestoreMetrics replaces the current metrics by what MetricsSnapshot returned.
func RestoreMetrics(data []byte) error {
	var s snapshot
	if err := codec.NewDecoderBytes(data, codecHandler).Decode(&s); err != nil {
		return fmt.Errorf("decode metrics: %w", err)
	}
	m, err := androidutil.NewMetrics(s.Density, image.Pt(s.Width, s.Height))
	if err != nil {
		return err
	}
	display.SetMetrics(m)
	return nil
}
