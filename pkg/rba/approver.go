package rba

import "context"

// Approver decides whether rbaconv may overwrite an existing, non-empty
// output directory. Implementations range from interactive prompts to
// forced countdowns for automation.
type Approver interface {
	// RequestApproval asks for permission to overwrite outputDir.
	// Returns true if the operation may proceed.
	RequestApproval(ctx context.Context, outputDir string) (bool, error)
}
