package engine

import "fmt"

// hexDigit converts a single ASCII hex character (uppercase only) to its
// value. Lowercase and any other byte is an input error.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// parseHex parses 1-4 uppercase hex digits into an unsigned integer. It
// fails as soon as any character is not a valid hex digit.
func parseHex(s string) (uint32, bool) {
	if len(s) < 1 || len(s) > 4 {
		return 0, false
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint32(d)
	}
	return v, true
}

// parseHexBlock validates a fixed-width hex block as a whole: every
// character must be a valid hex digit or the block as a whole is rejected.
// Used for the 8-character optional stick block: it validates as a whole
// rather than digit by digit.
func parseHexBlock(s string, width int) (uint32, bool) {
	if len(s) != width {
		return 0, false
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint32(d)
	}
	return v, true
}

// ParseControllerState parses the hex argument of Q/QL/IMM: 6 mandatory
// digits (4-hex buttons + 2-hex hat) optionally followed by 8 digits (four
// 2-hex stick axes). ok is false only when the mandatory portion itself is
// malformed (too short or non-hex); a bad optional block degrades to
// neutral sticks rather than failing the whole command.
func ParseControllerState(arg string) (ControllerState, bool) {
	if len(arg) < 6 {
		return ControllerState{}, false
	}

	buttons, ok := parseHexBlock(arg[0:4], 4)
	if !ok {
		return ControllerState{}, false
	}
	hat, ok := parseHexBlock(arg[4:6], 2)
	if !ok {
		return ControllerState{}, false
	}

	st := ControllerState{
		Buttons: uint16(buttons),
		Hat:     uint8(hat),
		LX:      StickCenter,
		LY:      StickCenter,
		RX:      StickCenter,
		RY:      StickCenter,
	}

	if rest := arg[6:]; len(rest) >= 8 {
		if sticks, ok := parseHexBlock(rest[0:8], 8); ok {
			st.LX = uint8(sticks >> 24)
			st.LY = uint8(sticks >> 16)
			st.RX = uint8(sticks >> 8)
			st.RY = uint8(sticks)
		}
		// any non-hex character anywhere in the 8-digit block: sticks stay
		// at the neutral value already set above.
	}

	return st, true
}

// FormatControllerState renders a state back to the 14-character hex form
// ParseControllerState accepts: 4-hex buttons, 2-hex hat, then LX/LY/RX/RY
// each 2-hex, all uppercase. Round-tripping through Format/Parse reproduces
// the original state.
func FormatControllerState(st ControllerState) string {
	return fmt.Sprintf("%04X%02X%02X%02X%02X%02X", st.Buttons, st.Hat, st.LX, st.LY, st.RX, st.RY)
}

// parseDecimal parses up to 3 decimal digits (used by SLAG).
func parseDecimal(s string) (int, bool) {
	if len(s) < 1 || len(s) > 3 {
		return 0, false
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
