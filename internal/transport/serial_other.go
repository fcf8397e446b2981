//go:build !linux

package transport

import "swicc/ierrors"

// OpenSerial is unavailable outside Linux: daedaluz/goserial's raw
// termios ioctls are Linux-specific. Non-Linux builds run against the
// console instead.
func OpenSerial(name string) (Line, error) {
	return nil, ierrors.Errorf(ierrors.TransportOpenError, name, "serial transport is only supported on linux builds")
}
