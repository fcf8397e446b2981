// Package dashboard exposes a live HTTP view of engine counters (vsync
// count, queue fill, recording fill) over statsview; the current mode is
// not charted. It is purely
// for operator observability. Nothing here can mutate engine state; a
// browser tab is never required for the serial protocol to function.
package dashboard

import (
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Source is the read-only slice of Supervisor the dashboard charts.
type Source interface {
	VsyncCount() uint64
	QueueFill() uint16
	RecordingFill() uint16
	ModeName() string
}

// Dashboard owns the statsview HTTP server.
type Dashboard struct {
	mgr *viewer.Viewer
}

// New registers the engine's custom counters as a statsview render chart
// and returns a Dashboard ready to Start serving addr (e.g. ":8899").
func New(addr string, src Source) *Dashboard {
	viewer.AddRCOpt(&viewer.RcOpt{
		PullInterval: 500 * time.Millisecond,
		Title:        "SwiCC Engine",
		Tags:         []string{"vsync", "queue", "recording"},
		Metrics: []*viewer.Metric{
			{Name: "vsync_count", Fetch: func() float64 { return float64(src.VsyncCount()) }},
			{Name: "queue_fill", Fetch: func() float64 { return float64(src.QueueFill()) }},
			{Name: "recording_fill", Fetch: func() float64 { return float64(src.RecordingFill()) }},
		},
	})

	return &Dashboard{mgr: statsview.New(viewer.WithAddr(addr))}
}

// Start blocks serving the dashboard until the process exits or the
// underlying HTTP server fails. Intended to be run in its own goroutine.
func (d *Dashboard) Start() {
	d.mgr.Start()
}

// Stop shuts the dashboard's HTTP server down.
func (d *Dashboard) Stop() {
	d.mgr.Stop()
}
