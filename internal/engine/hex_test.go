package engine

import (
	"testing"

	"swicc/internal/testhelp"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"0", 0, true},
		{"F", 0xF, true},
		{"1A2B", 0x1A2B, true},
		{"", 0, false},
		{"12345", 0, false},
		{"1a", 0, false}, // lowercase is an input error
		{"1G", 0, false},
	}
	for _, c := range cases {
		got, ok := parseHex(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("parseHex(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseControllerStateMandatoryOnly(t *testing.T) {
	st, ok := ParseControllerState("040800")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := ControllerState{Buttons: 0x0004, Hat: 0x08, LX: StickCenter, LY: StickCenter, RX: StickCenter, RY: StickCenter}
	testhelp.Equate(t, st, want)
}

func TestParseControllerStateWithSticks(t *testing.T) {
	st, ok := ParseControllerState("04080010203040")
	if !ok {
		t.Fatalf("expected ok")
	}
	if st.LX != 0x10 || st.LY != 0x20 || st.RX != 0x30 || st.RY != 0x40 {
		t.Errorf("sticks not decoded: %+v", st)
	}
}

// A malformed optional sticks block degrades to neutral sticks without
// failing the whole command.
func TestParseControllerStateBadStickBlockDegradesToNeutral(t *testing.T) {
	st, ok := ParseControllerState("040800ZZ203040")
	if !ok {
		t.Fatalf("expected ok despite bad stick block")
	}
	if st.LX != StickCenter || st.LY != StickCenter || st.RX != StickCenter || st.RY != StickCenter {
		t.Errorf("sticks should be neutral, got %+v", st)
	}
	if st.Buttons != 0x0004 || st.Hat != 0x08 {
		t.Errorf("mandatory portion should still apply, got %+v", st)
	}
}

func TestParseControllerStateMandatoryTooShort(t *testing.T) {
	if _, ok := ParseControllerState("0408"); ok {
		t.Errorf("expected failure on short mandatory field")
	}
}

// Testable property 7: formatting then re-parsing a state is a no-op.
func TestHexCodecIdempotent(t *testing.T) {
	st := ControllerState{Buttons: 0x1234, Hat: 5, LX: 1, LY: 2, RX: 3, RY: 4}
	round, ok := ParseControllerState(FormatControllerState(st))
	if !ok {
		t.Fatalf("round trip failed to parse")
	}
	testhelp.Equate(t, round, st)
}

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"120", 120, true},
		{"999", 999, true},
		{"", 0, false},
		{"1000", 0, false},
		{"1a", 0, false},
	}
	for _, c := range cases {
		got, ok := parseDecimal(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("parseDecimal(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
