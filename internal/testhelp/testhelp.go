// Package testhelp provides small, hand-rolled test assertions used in
// place of a third-party assertion library. Reflection-based equality
// checks cover the structs and scalars the engine, command and transport
// tests compare; there is nothing here beyond what those tests need.
package testhelp

import (
	"reflect"
	"testing"
)

// Equate fails the test unless got and want are equal.
func Equate(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// ExpectEquality fails the test unless want and got are equal.
func ExpectEquality(t *testing.T, want, got any) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// ExpectInequality fails the test if want and got are equal.
func ExpectInequality(t *testing.T, want, got any) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		t.Errorf("got %v, want anything but that", got)
	}
}

// ExpectApproximate fails the test unless got is within tolerance of want.
func ExpectApproximate(t *testing.T, want, got float64, tolerance float64) {
	t.Helper()
	d := want - got
	if d < 0 {
		d = -d
	}
	if d > tolerance {
		t.Errorf("got %v, want %v (+/- %v)", got, want, tolerance)
	}
}

// isSuccess reports whether result represents success: a true bool, a nil
// error, or a bare nil.
func isSuccess(result any) bool {
	if result == nil {
		return true
	}
	switch v := result.(type) {
	case bool:
		return v
	case error:
		return v == nil
	default:
		return false
	}
}

// ExpectSuccess fails the test unless result is a true bool or a nil error.
func ExpectSuccess(t *testing.T, result any) {
	t.Helper()
	if !isSuccess(result) {
		t.Errorf("expected success, got %v", result)
	}
}

// ExpectFailure fails the test unless result is a false bool or a non-nil
// error.
func ExpectFailure(t *testing.T, result any) {
	t.Helper()
	switch result.(type) {
	case bool, error:
		if !isSuccess(result) {
			return
		}
	}
	t.Errorf("expected failure, got %v", result)
}
