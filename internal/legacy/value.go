package legacy

import (
	"github.com/rbatools/rbaconv/pkg/rba"
)

// ValueNode is the old-style value payload: an optional literal value
// attribute plus zero or more functionReference children. The old format
// never carries both; if it does anyway, the value attribute wins.
//
// ValueNode is embedded into the element structs that carry it
// (maximalDensity, capacity, targetValue, targetReaction).
type ValueNode struct {
	Value              *string        `xml:"value,attr"`
	FunctionReferences []FunctionRef  `xml:"functionReference"`
}

// FunctionRef is one functionReference child of a value node.
type FunctionRef struct {
	Function string `xml:"function,attr"`
}

// ResolveValue flattens a value node into a parameter expression:
//
//   - a literal value attribute (numeric string or bare function name) is
//     returned verbatim, with no interpretation of its content;
//   - a single function reference collapses to the function name, which is
//     structurally equivalent to a literal symbolic value;
//   - two or more references synthesize a new multiplicative aggregate named
//     aggregateID, appended to params.Aggregates in source order, and the
//     aggregate id is returned.
//
// aggregateID must be globally unique per call site (owning entity id plus a
// role suffix such as "_density" or "_capacity"); a collision would silently
// merge unrelated aggregates in the output.
//
// A node with no value and no references is malformed and aborts the
// conversion.
func ResolveValue(node ValueNode, aggregateID string, params *rba.Parameters) (string, error) {
	if node.Value != nil {
		return *node.Value, nil
	}

	refs := node.FunctionReferences
	switch len(refs) {
	case 0:
		return "", &MalformedValueNodeError{Context: aggregateID}
	case 1:
		return refs[0].Function, nil
	}

	agg := rba.Aggregate{
		ID:   aggregateID,
		Type: rba.AggregateTypeMultiplication,
	}
	for _, ref := range refs {
		agg.FunctionReferences = append(agg.FunctionReferences,
			rba.FunctionReference{Function: ref.Function})
	}
	params.Aggregates = append(params.Aggregates, agg)
	return aggregateID, nil
}
