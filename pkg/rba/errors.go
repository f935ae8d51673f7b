package rba

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := converter.Run(ctx, cfg)
//	if errors.Is(err, rba.ErrMalformedModel) {
//	    // Input model is structurally broken; nothing was written.
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInputNotFound indicates a required input model file was not found.
	ErrInputNotFound = errors.New("input file not found")

	// ErrMalformedModel indicates the input model violates the legacy format
	// (malformed value node, missing required subtree, broken XML).
	ErrMalformedModel = errors.New("malformed input model")

	// ErrApprovalDenied indicates the user denied overwriting the output
	// directory.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrDanglingReference indicates a species reference survived conversion
	// without a matching species definition (strict mode only).
	ErrDanglingReference = errors.New("dangling species reference")

	// ErrWriteFailed indicates output serialization failed.
	ErrWriteFailed = errors.New("write failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrInputNotFound):
		return ExitInputNotFound
	case errors.Is(err, ErrMalformedModel):
		return ExitMalformedModel
	case errors.Is(err, ErrDanglingReference):
		return ExitDanglingReference
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	}

	return ExitGeneralError
}
