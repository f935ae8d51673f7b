package rba_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rbatools/rbaconv/pkg/rba"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, rba.ExitSuccess},
		{"general error", errors.New("something went wrong"), rba.ExitGeneralError},
		{"invalid config", rba.ErrInvalidConfig, rba.ExitConfigError},
		{"approval denied", rba.ErrApprovalDenied, rba.ExitApprovalDenied},
		{"input not found", rba.ErrInputNotFound, rba.ExitInputNotFound},
		{"malformed model", rba.ErrMalformedModel, rba.ExitMalformedModel},
		{"dangling reference", rba.ErrDanglingReference, rba.ExitDanglingReference},
		{"write failed", rba.ErrWriteFailed, rba.ExitWriteFailed},
		{"wrapped malformed model", fmt.Errorf("reading processes.xml: %w", rba.ErrMalformedModel), rba.ExitMalformedModel},
		{"wrapped input not found", fmt.Errorf("opening metabolism.xml: %w", rba.ErrInputNotFound), rba.ExitInputNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rba.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
