// Package transport supplies the byte-stream sources the command parser
// reads from: a second channel distinct from the HID endpoint itself. A
// real UART is the normal case (serial_linux.go); non-Linux builds have no
// serial transport, tests get an in-memory substitute, and an optional
// local terminal lets a human drive the engine without any hardware
// attached.
package transport

import "io"

// Line is anything byte-addressable that the command parser can read from
// and reply on: a real serial port, a loopback pipe, or a terminal.
type Line interface {
	io.ReadWriteCloser
}
