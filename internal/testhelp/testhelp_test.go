package testhelp

import (
	"errors"
	"testing"
)

func TestExpectFailure(t *testing.T) {
	ExpectFailure(t, false)
	ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	ExpectSuccess(t, true)
	var err error
	ExpectSuccess(t, err)
	ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	ExpectEquality(t, 10, 5+5)
	ExpectEquality(t, true, true)
	ExpectEquality(t, true, !false)
}

func TestExpectInequality(t *testing.T) {
	ExpectInequality(t, 11, 5+5)
	ExpectInequality(t, true, false)
}

func TestExpectApproximate(t *testing.T) {
	ExpectApproximate(t, 10, 10.05, 0.1)
}

func TestEquate(t *testing.T) {
	Equate(t, 5+5, 10)
	Equate(t, "abc", "abc")
}
