// Package assert provides goroutine-ownership checks, the runtime analogue
// of the interrupt-priority reasoning a single-ISR-per-field firmware
// design relies on. Each field group in the engine is owned by exactly one
// goroutine; Owner records which goroutine first touched a group and panics
// if a second goroutine ever touches it, turning a documented invariant
// into one that is actively checked.
//
// Checks are compiled in only when built with the "swiccdebug" build tag;
// production builds pay no cost for them.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the calling goroutine. It is
// different between goroutines and consistent for a given goroutine, but it
// is only ever meant for debugging or testing.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner checks that every call for a given group name is made from the same
// goroutine that made the first call.
type Owner struct {
	name  string
	owner uint64
	set   bool
}

// NewOwner creates an Owner for the named field group.
func NewOwner(name string) *Owner {
	return &Owner{name: name}
}

// Check records the calling goroutine on first use and panics if a later
// call arrives from a different goroutine. A no-op unless built with the
// "swiccdebug" tag (see check_debug.go / check_release.go).
func (o *Owner) Check() {
	check(o)
}
