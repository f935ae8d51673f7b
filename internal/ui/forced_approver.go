package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rbatools/rbaconv/pkg/rba"
)

// ForcedApproverCountdown is the delay before a forced approval proceeds.
const ForcedApproverCountdown = 3 * time.Second

// ForcedApprover implements the Approver interface for forced (non-interactive)
// approval. It displays a countdown and automatically approves after the countdown,
// used when the --force flag is provided.
type ForcedApprover struct {
	verbose bool
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) rba.Approver {
	return &ForcedApprover{verbose: verbose}
}

// RequestApproval displays a countdown and automatically approves after the countdown.
func (a *ForcedApprover) RequestApproval(ctx context.Context, outputDir string) (bool, error) {
	fmt.Fprintf(os.Stderr, "\nWARNING: overwriting output directory '%s'\n", outputDir)

	countdownSeconds := int(ForcedApproverCountdown.Seconds())
	for i := countdownSeconds; i > 0; i-- {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
			fmt.Fprintf(os.Stderr, "\rOverwriting in: %d seconds... (Press Ctrl+C to cancel)", i)
			time.Sleep(1 * time.Second)
		}
	}

	fmt.Fprintf(os.Stderr, "\rProceeding with conversion...                              \n")
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ rba.Approver = (*ForcedApprover)(nil)
