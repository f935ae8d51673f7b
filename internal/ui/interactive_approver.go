// Package ui provides the console-facing pieces of rbaconv: overwrite
// approvers and the styled conversion summary.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rbatools/rbaconv/pkg/rba"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It prompts the user to type "yes" before an
// existing output directory is overwritten.
type InteractiveApprover struct {
	verbose bool
}

// NewInteractiveApprover creates a new InteractiveApprover.
func NewInteractiveApprover(verbose bool) rba.Approver {
	return &InteractiveApprover{verbose: verbose}
}

// RequestApproval prompts the user to confirm overwriting the output directory.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, outputDir string) (bool, error) {
	fmt.Fprintf(os.Stderr, "\nWARNING: output directory '%s' is not empty.\n", outputDir)
	fmt.Fprintln(os.Stderr, "Existing model files will be overwritten.")
	fmt.Fprint(os.Stderr, "\nType 'yes' and press Enter to continue: ")

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(os.Stdin)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if strings.EqualFold(input, "yes") {
			fmt.Fprintln(os.Stderr, "Confirmed. Proceeding with conversion...")
			return true, nil
		}
		fmt.Fprintln(os.Stderr, "Operation cancelled.")
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ rba.Approver = (*InteractiveApprover)(nil)
