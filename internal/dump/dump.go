// Package dump renders a Graphviz dot graph of live supervisor state for
// offline diagnostics, backing the DUMP execution mode. It never mutates
// anything it inspects.
package dump

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Snapshot is the minimal, dump-friendly view of engine state: plain
// values only, so memviz's graph stays readable instead of descending
// into channels and mutexes that carry no diagnostic value.
type Snapshot struct {
	Mode          string
	QueueFill     uint16
	RecordingFill uint16
	VsyncCount    uint64
	LEDEnabled    bool
	USBMounted    bool
}

// Source is the read-only slice of Supervisor a Snapshot is built from.
type Source interface {
	ModeName() string
	QueueFill() uint16
	RecordingFill() uint16
	VsyncCount() uint64
	LEDEnabled() bool
}

// USBStatus mirrors engine.USBStatus, kept separate from Source so dump
// doesn't need to import the hid/engine USB wiring to build a Snapshot.
type USBStatus interface {
	Mounted() bool
}

// Write renders a dot graph of src's current state to w.
func Write(w io.Writer, src Source, usb USBStatus) {
	snap := Snapshot{
		Mode:          src.ModeName(),
		QueueFill:     src.QueueFill(),
		RecordingFill: src.RecordingFill(),
		VsyncCount:    src.VsyncCount(),
		LEDEnabled:    src.LEDEnabled(),
		USBMounted:    usb.Mounted(),
	}
	memviz.Map(w, &snap)
}
