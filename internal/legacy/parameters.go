package legacy

import (
	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/pkg/rba"
)

type legacyParameters struct {
	MaximalDensities []legacyMaximalDensity `xml:"listOfMaximalDensities>maximalDensity"`
	Functions        *legacyFunctionList    `xml:"listOfFunctions"`
}

type legacyFunctionList struct {
	Functions []rba.Function `xml:"function"`
}

type legacyMaximalDensity struct {
	Compartment string `xml:"compartment,attr"`
	ValueNode
}

// ReadParameters reads the legacy parameters file: compartment density
// constraints (old maximalDensity nodes become target densities) and the
// function list, which carries over unchanged.
//
// The returned Parameters value is the aggregate registry shared with every
// later reader; density constraints with multiple function references are
// the first entries appended to it.
func ReadParameters(provider filesystem.Provider, dir string) (*rba.Parameters, error) {
	data, err := readInput(provider, dir, rba.ParametersFile)
	if err != nil {
		return nil, err
	}
	var doc legacyParameters
	if err := decodeInput(data, rba.ParametersFile, &doc); err != nil {
		return nil, err
	}
	if doc.Functions == nil {
		return nil, &MissingRequiredSubtreeError{File: rba.ParametersFile, Subtree: "listOfFunctions"}
	}

	result := &rba.Parameters{Functions: doc.Functions.Functions}
	for _, d := range doc.MaximalDensities {
		target := rba.TargetDensity{Compartment: d.Compartment}
		target.UpperBound, err = ResolveValue(d.ValueNode, d.Compartment+"_density", result)
		if err != nil {
			return nil, wrapNodeError(err, rba.ParametersFile)
		}
		result.TargetDensities = append(result.TargetDensities, target)
	}
	return result, nil
}

// wrapNodeError stamps the source file onto resolver errors.
func wrapNodeError(err error, file string) error {
	if nodeErr, ok := err.(*MalformedValueNodeError); ok && nodeErr.File == "" {
		nodeErr.File = file
	}
	return err
}
