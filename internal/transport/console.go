package transport

import (
	"os"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
)

// Console is a Line backed by the process's own controlling terminal, put
// into raw mode so keystrokes reach the command parser one byte at a time
// instead of being line-buffered and echoed by the kernel's tty discipline.
// It exists so the engine can be operated interactively with no serial
// hardware attached at all.
type Console struct {
	mu      sync.Mutex
	f       *os.File
	restore syscall.Termios
}

// OpenConsole puts the current terminal into raw mode and returns a Line
// reading and writing it. Close restores the terminal's prior settings.
func OpenConsole() (*Console, error) {
	f := os.Stdin

	var saved syscall.Termios
	if err := termios.Tcgetattr(f.Fd(), &saved); err != nil {
		return nil, err
	}

	raw := saved
	termios.Cfmakeraw(&raw)
	if err := termios.Tcsetattr(f.Fd(), termios.TCIFLUSH, &raw); err != nil {
		return nil, err
	}

	return &Console{f: f, restore: saved}, nil
}

// Read implements io.Reader, reading raw keystrokes from the terminal.
func (c *Console) Read(p []byte) (int, error) {
	return c.f.Read(p)
}

// Write implements io.Writer, writing replies back to the terminal.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.Stdout.Write(p)
}

// Close restores the terminal's original mode.
func (c *Console) Close() error {
	return termios.Tcsetattr(c.f.Fd(), termios.TCIFLUSH, &c.restore)
}
