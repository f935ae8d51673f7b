package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rbatools/rbaconv/internal/cli"
	"github.com/rbatools/rbaconv/pkg/rba"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(rba.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(rba.ExitCodeForError(err))
	}
}
