package legacy

import (
	"fmt"

	"github.com/rbatools/rbaconv/pkg/rba"
)

// MalformedValueNodeError reports a value-bearing node that carries neither
// a value attribute nor any functionReference child. The legacy format has
// no meaning for such a node, so the conversion aborts.
type MalformedValueNodeError struct {
	File    string // Source file the node came from
	Context string // Aggregate name hint identifying the owning entity
}

// Error implements the error interface.
func (e *MalformedValueNodeError) Error() string {
	msg := fmt.Sprintf("value node for %q has neither a value attribute nor function references", e.Context)
	if e.File != "" {
		return e.File + ": " + msg
	}
	return msg
}

// Unwrap ties the error into the rba.ErrMalformedModel taxonomy.
func (e *MalformedValueNodeError) Unwrap() error {
	return rba.ErrMalformedModel
}

// MissingRequiredSubtreeError reports the absence of a structurally required
// child element (e.g. listOfFunctions, listOfComponents).
type MissingRequiredSubtreeError struct {
	File    string // Source file
	Subtree string // Name of the missing element
	Context string // Owning entity id, if any
}

// Error implements the error interface.
func (e *MissingRequiredSubtreeError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: required element %q missing in %q", e.File, e.Subtree, e.Context)
	}
	return fmt.Sprintf("%s: required element %q missing", e.File, e.Subtree)
}

// Unwrap ties the error into the rba.ErrMalformedModel taxonomy.
func (e *MissingRequiredSubtreeError) Unwrap() error {
	return rba.ErrMalformedModel
}
