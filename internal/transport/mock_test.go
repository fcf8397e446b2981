package transport

import (
	"testing"

	"swicc/internal/testhelp"
)

func TestLoopbackRoundTrip(t *testing.T) {
	l := NewLoopback()
	l.WriteWire([]byte("+ID\r\n"))

	buf := make([]byte, 16)
	n, err := l.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	testhelp.Equate(t, string(buf[:n]), "+ID\r\n")

	if _, err := l.Write([]byte("+SwiCC \r\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	testhelp.Equate(t, string(l.ReadReply()), "+SwiCC \r\n")
}

func TestLoopbackCloseUnblocksRead(t *testing.T) {
	l := NewLoopback()
	done := make(chan error, 1)
	go func() {
		_, err := l.Read(make([]byte, 1))
		done <- err
	}()
	l.Close()
	if err := <-done; err == nil {
		t.Error("Read after Close returned nil error, want EOF")
	}
}
