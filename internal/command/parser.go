// Package command implements the line-oriented serial protocol:
// byte-at-a-time accumulation into a 32-byte line buffer, dispatch by
// prefix match against the command table, and best-effort reply writes.
//
// This package knows nothing about rings, recorders or controller state; it
// only turns bytes into (name, argument) pairs and hands them to an
// Executor, the way a UART receive interrupt only decodes bytes before
// calling into the engine.
package command

import (
	"io"
	"strings"

	"swicc/ierrors"
	"swicc/logger"
)

// Executor runs one parsed command and returns its reply, or "" if the
// command defines none. Supervisor implements this.
type Executor interface {
	Execute(name, arg string) string
}

const bufCap = 32

type entry struct {
	name   string
	prefix string
}

// table lists every recognized command prefix. Each prefix
// includes the separating space, which is what keeps "GR " from ever
// matching a "GRF "/"GRR "/"GRB " line: they diverge at the character right
// after "GR".
var table = []entry{
	{"ID", "ID "},
	{"VER", "VER "},
	{"Q", "Q "},
	{"QL", "QL "},
	{"SLAG", "SLAG "},
	{"IMM", "IMM "},
	{"VSD", "VSD "},
	{"REC", "REC "},
	{"GCS", "GCS "},
	{"GQF", "GQF "},
	{"GRF", "GRF "},
	{"GRR", "GRR "},
	{"GRB", "GRB "},
	{"GR", "GR "},
	{"VSYNC", "VSYNC "},
	{"LED", "LED "},
}

func match(line string) (name, arg string, ok bool) {
	for _, e := range table {
		if strings.HasPrefix(line, e.prefix) {
			return e.name, line[len(e.prefix):], true
		}
	}
	return "", "", false
}

// Parser accumulates bytes into lines and dispatches them to an Executor.
// It is not safe for concurrent use: the original protocol is a single
// UART RX stream processed in order, and Parser mirrors that.
type Parser struct {
	exec Executor
	buf  [bufCap]byte
	n    int
}

// NewParser creates a Parser dispatching to exec.
func NewParser(exec Executor) *Parser {
	return &Parser{exec: exec}
}

// Feed processes one received byte. It returns dispatched=true exactly when
// b completed a recognized command line, together with that command's reply
// (empty for commands that define none).
// Malformed or unrecognized lines are discarded silently: a parser reply
// only ever exists for commands that define one.
func (p *Parser) Feed(b byte) (reply string, dispatched bool) {
	switch {
	case b == '+':
		// Command-start byte: reset the line buffer unconditionally, even
		// mid-line, allowing a mid-line restart.
		p.n = 0
		return "", false

	case b == '\r' || b == '\n':
		if p.n == 0 {
			return "", false
		}
		line := string(p.buf[:p.n])
		p.n = 0
		name, arg, ok := match(line)
		if !ok {
			logger.Logf(logger.Allow, "command", "discarded unrecognized line %q", line)
			return "", false
		}
		return p.exec.Execute(name, arg), true

	default:
		if p.n < bufCap {
			p.buf[p.n] = b
			p.n++
		}
		// else: overflow past position 31 is silently discarded.
		return "", false
	}
}

// RunLoop reads bytes from r one at a time, feeding each to Feed, and
// writes any reply to w. It returns when r.Read returns a non-nil error
// (typically the transport closing). Write failures are logged and
// otherwise ignored: a full TX buffer drops characters silently rather
// than retrying or blocking.
func (p *Parser) RunLoop(r io.Reader, w io.Writer) error {
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n > 0 {
			if reply, dispatched := p.Feed(b[0]); dispatched && reply != "" {
				if _, werr := io.WriteString(w, reply); werr != nil {
					logger.Log(logger.Allow, "command", ierrors.Errorf(ierrors.TransportWriteError, werr))
				}
			}
		}
		if err != nil {
			return ierrors.Errorf(ierrors.TransportReadError, err)
		}
	}
}
