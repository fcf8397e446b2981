// Package version reports the running build's identity: the same string
// the command parser replies with over VER.
package version

import "fmt"

// number is the protocol version the command parser reports over VER.
// It identifies the wire protocol, not the Go module's own release
// cadence, which is why it does not follow normal semver bumps.
const number = "2.2"

// revision is set at build time via -ldflags. Empty in a plain `go build`
// with no linker flags.
var revision string

// Version returns the protocol version string and, if this binary was
// built with a revision linked in, that revision too. A binary built
// without -ldflags returns an empty revision and a nil error.
func Version() (ver string, rev string, err error) {
	if revision == "" {
		return number, "", nil
	}
	return number, revision, nil
}

// String returns a single human-readable line combining version and
// revision, convenient for -v output.
func String() string {
	ver, rev, _ := Version()
	if rev == "" {
		return fmt.Sprintf("swicc %s", ver)
	}
	return fmt.Sprintf("swicc %s (%s)", ver, rev)
}
