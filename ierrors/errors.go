// Package ierrors is a helper package for the plain Go error type. Errors
// constructed here are thought of as curated errors: each is built from a
// constant message template, so that Error() can de-duplicate identical
// adjacent parts when curated errors are wrapped by other curated errors.
//
// Internal protocol conditions such as malformed command lines,
// out-of-range numerics, and buffer overflow are NOT represented as Go
// errors — they are silent, data-driven recoveries by design and are never
// routed through this package. ierrors is reserved for the small set of
// conditions that are genuinely exceptional: a transport that cannot be
// opened or has already been closed, or a misconfigured flag.
package ierrors

import (
	"errors"
	"fmt"
)

// curated is an error built from a message template and the values used to
// fill it. When one of those values is itself an error, curated chains to
// it through Unwrap so the standard errors.Is/errors.As machinery can walk
// past it.
type curated struct {
	template string
	values   []any
}

// Errorf creates a new curated error from a message template.
func Errorf(template string, values ...any) error {
	return curated{template: template, values: values}
}

// Unwrap exposes the first value that is itself an error, letting
// errors.Is and errors.As reach through a curated error to whatever it
// wraps.
func (e curated) Unwrap() error {
	for _, v := range e.values {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

// Error renders the template against its values. If this error wraps
// another curated error built from the exact same template, rendering
// both layers would print that template's context twice — once here, once
// inside the wrapped error's own rendering — so in that case the wrapped
// error's rendering is returned as-is instead of re-prefixing it.
func (e curated) Error() string {
	if inner, ok := e.Unwrap().(curated); ok && inner.template == e.template {
		return inner.Error()
	}
	return fmt.Sprintf(e.template, e.values...)
}

// Is reports whether err, or anything it wraps, was constructed from the
// given message template.
func Is(err error, template string) bool {
	for err != nil {
		if c, ok := err.(curated); ok && c.template == template {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
