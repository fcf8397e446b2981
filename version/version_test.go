package version

import (
	"testing"

	"swicc/internal/testhelp"
)

func TestVersionWithoutRevision(t *testing.T) {
	ver, rev, err := Version()
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	testhelp.Equate(t, ver, number)
	testhelp.Equate(t, rev, "")
}

func TestStringWithRevision(t *testing.T) {
	old := revision
	revision = "abc1234"
	defer func() { revision = old }()

	got := String()
	want := "swicc " + number + " (abc1234)"
	testhelp.Equate(t, got, want)
}
