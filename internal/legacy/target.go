package legacy

import "github.com/rbatools/rbaconv/pkg/rba"

// TargetKind is the classification outcome for a targetValue node.
// Reaction-flux targets use a separate XML tag (targetReaction) and never
// pass through the classifier.
type TargetKind int

const (
	// TargetConcentration is a growth-dilution-compensated concentration
	// target. This is the default bucket.
	TargetConcentration TargetKind = iota

	// TargetProductionFlux is an absolute production flux with no
	// growth-dilution term.
	TargetProductionFlux

	// TargetDegradationFlux is a degradation flux target.
	TargetDegradationFlux
)

// ClassifyTarget sorts a targetValue node into one of the three species
// target buckets based on its boolean-like attributes.
//
// This is a strict priority chain, not independent conditions: degradation
// beats everything, then explicit dilution_compensation="0" marks an
// absolute production flux, and everything else (including nodes with
// neither attribute) is a concentration target.
func ClassifyTarget(degradation, dilutionCompensation string) TargetKind {
	switch {
	case rba.IsTrue(degradation):
		return TargetDegradationFlux
	case dilutionCompensation != "" && !rba.IsTrue(dilutionCompensation):
		return TargetProductionFlux
	default:
		return TargetConcentration
	}
}
