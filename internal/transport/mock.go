package transport

import (
	"bytes"
	"io"
	"sync"

	"swicc/ierrors"
)

// Loopback is an in-memory Line backed by two byte queues, one per
// direction. Used in place of a real serial port in tests that drive the
// command parser without hardware; the RUN mode never selects it.
type Loopback struct {
	mu      sync.Mutex
	cond    *sync.Cond
	toHost  bytes.Buffer
	toWire  bytes.Buffer
	closed  bool
}

// NewLoopback creates a ready-to-use Loopback.
func NewLoopback() *Loopback {
	l := &Loopback{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// WriteWire feeds bytes in as if they had arrived over the wire, for a
// test or console driver to then Read out via the Line interface.
func (l *Loopback) WriteWire(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.toWire.Write(b)
	l.cond.Broadcast()
}

// ReadReply drains whatever has been Write-n by the command parser,
// i.e. the replies sent back toward the host.
func (l *Loopback) ReadReply() []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	b := append([]byte(nil), l.toHost.Bytes()...)
	l.toHost.Reset()
	return b
}

// Read implements io.Reader, blocking until wire bytes are available or
// the loopback is closed.
func (l *Loopback) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.toWire.Len() == 0 && !l.closed {
		l.cond.Wait()
	}
	if l.toWire.Len() == 0 && l.closed {
		return 0, io.EOF
	}
	return l.toWire.Read(p)
}

// Write implements io.Writer, appending to the reply queue.
func (l *Loopback) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return 0, ierrors.Errorf(ierrors.TransportClosed)
	}
	return l.toHost.Write(p)
}

// Close implements io.Closer, unblocking any pending Read.
func (l *Loopback) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.cond.Broadcast()
	return nil
}
