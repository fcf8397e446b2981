// Package hid adapts engine state to the shape a USB HID IN report takes.
// It has no state of its own: every call reads whatever the engine
// currently has published.
package hid

import (
	"sync/atomic"

	"swicc/internal/engine"
)

// Source is the minimum the adapter needs from the engine: a lock-free
// read of the current controller state (Supervisor satisfies this).
type Source interface {
	Current() engine.ControllerState
}

// Adapter renders Source's current state into the 7-byte IN report.
type Adapter struct {
	src Source
}

// NewAdapter creates an Adapter reading from src.
func NewAdapter(src Source) *Adapter {
	return &Adapter{src: src}
}

// Report returns the 7-byte HID IN report: buttons little-endian, then
// hat, then LX/LY/RX/RY. Source.Current already substitutes neutral for
// STOP mode, so Report never needs to know about modes.
func (a *Adapter) Report() [7]byte {
	st := a.src.Current()
	return [7]byte{
		byte(st.Buttons),
		byte(st.Buttons >> 8),
		st.Hat,
		st.LX,
		st.LY,
		st.RX,
		st.RY,
	}
}

// MountTracker is the engine.USBStatus a host-side build wires in: the USB
// gadget stack itself (descriptor negotiation, enumeration) is out of
// scope here, so whatever drives the real mount/unmount transitions calls
// Store, and GCS just reads the flag it last set.
type MountTracker struct {
	mounted atomic.Bool
}

// NewMountTracker creates a MountTracker starting unmounted.
func NewMountTracker() *MountTracker {
	return &MountTracker{}
}

// Store records the gadget's current mount state.
func (m *MountTracker) Store(mounted bool) {
	m.mounted.Store(mounted)
}

// Mounted implements engine.USBStatus.
func (m *MountTracker) Mounted() bool {
	return m.mounted.Load()
}

// OutputReport is the host-to-device feedback report (rumble/LED)
// delivered on the HID OUT endpoint. USB descriptor layout and the OUT
// endpoint itself are out of scope here; this type exists only so the
// shape is documented for a future consumer. Nothing in this package
// constructs or interprets one.
type OutputReport struct {
	RumbleLow  uint8
	RumbleHigh uint8
	LED        uint8
}
