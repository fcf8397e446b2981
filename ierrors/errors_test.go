package ierrors

import (
	"errors"
	"testing"

	"swicc/internal/testhelp"
)

func TestErrorfFormatsTemplate(t *testing.T) {
	err := Errorf(TransportOpenError, "/dev/ttyACM0", "permission denied")
	want := "transport: cannot open /dev/ttyACM0: permission denied"
	testhelp.Equate(t, err.Error(), want)
}

func TestIsMatchesTemplate(t *testing.T) {
	err := Errorf(TransportClosed)
	if !Is(err, TransportClosed) {
		t.Error("Is(err, TransportClosed) = false, want true")
	}
	if Is(err, TransportOpenError) {
		t.Error("Is(err, TransportOpenError) = true, want false")
	}
}

func TestIsFalseForNil(t *testing.T) {
	if Is(nil, TransportClosed) {
		t.Error("Is(nil, ...) = true, want false")
	}
}

func TestErrorCollapsesDuplicateWrap(t *testing.T) {
	inner := Errorf("dup: %v", "detail")
	outer := Errorf("dup: %v", inner)
	// wrapping a curated error in another curated error built from the
	// exact same template should not duplicate that template's text.
	testhelp.Equate(t, outer.Error(), "dup: detail")
}

// Distinct templates are never collapsed, even when they render with a
// shared leading word, so nesting two different transport errors keeps
// both layers of context.
func TestErrorKeepsDistinctTemplatesUncollapsed(t *testing.T) {
	inner := Errorf(TransportReadError, "disk stalled")
	outer := Errorf(TransportOpenError, "/dev/ttyACM0", inner)
	want := "transport: cannot open /dev/ttyACM0: transport: read error: disk stalled"
	testhelp.Equate(t, outer.Error(), want)
}

// errors.Unwrap and errors.Is reach through a curated error to whatever
// error value it wraps, not just the template recorded on the outer layer.
func TestUnwrapReachesWrappedError(t *testing.T) {
	inner := Errorf(TransportReadError, "disk stalled")
	outer := Errorf(TransportOpenError, "/dev/ttyACM0", inner)

	testhelp.Equate(t, errors.Unwrap(outer), inner)
	if !Is(outer, TransportReadError) {
		t.Error("Is(outer, TransportReadError) = false, want true (should walk the wrap chain)")
	}
}
