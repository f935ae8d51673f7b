package logging

import (
	"testing"

	"github.com/rbatools/rbaconv/pkg/rba"
)

// Compile-time checks that both implementations satisfy rba.Logger.
var (
	_ rba.Logger = (*ConsoleLogger)(nil)
	_ rba.Logger = (*NullLogger)(nil)
)

func TestConsoleLogger_VerboseSuppressed(t *testing.T) {
	// Verbose output must be a no-op when verbose mode is off; this exercises
	// the early return without asserting on stderr contents.
	l := NewConsoleLogger(false)
	l.Verbose("should not panic: %s", "arg")
	l.Verbose("no args either")
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	l := NewNullLogger()
	l.Verbose("v %d", 1)
	l.Info("i %d", 2)
	l.Error("e %d", 3)
}
