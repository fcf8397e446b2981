package hid

import (
	"testing"

	"swicc/internal/engine"
	"swicc/internal/testhelp"
)

type fakeSource struct{ st engine.ControllerState }

func (f fakeSource) Current() engine.ControllerState { return f.st }

func TestReportByteLayout(t *testing.T) {
	a := NewAdapter(fakeSource{st: engine.ControllerState{
		Buttons: 0x1234,
		Hat:     3,
		LX:      10,
		LY:      20,
		RX:      30,
		RY:      40,
	}})

	got := a.Report()
	want := [7]byte{0x34, 0x12, 3, 10, 20, 30, 40}
	testhelp.Equate(t, got, want)
}

func TestMountTrackerDefaultsUnmounted(t *testing.T) {
	m := NewMountTracker()
	if m.Mounted() {
		t.Error("new MountTracker reports mounted, want unmounted")
	}
	m.Store(true)
	if !m.Mounted() {
		t.Error("after Store(true), Mounted() = false")
	}
}

func TestReportReflectsNeutral(t *testing.T) {
	a := NewAdapter(fakeSource{st: engine.Neutral})
	got := a.Report()
	want := [7]byte{0, 0, engine.HatNeutral, engine.StickCenter, engine.StickCenter, engine.StickCenter, engine.StickCenter}
	testhelp.Equate(t, got, want)
}
