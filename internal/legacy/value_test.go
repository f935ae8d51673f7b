package legacy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbatools/rbaconv/pkg/rba"
)

func strPtr(s string) *string { return &s }

func TestResolveValue_LiteralValue(t *testing.T) {
	params := &rba.Parameters{}
	node := ValueNode{Value: strPtr("5.0")}

	value, err := ResolveValue(node, "X_flux", params)
	require.NoError(t, err)
	assert.Equal(t, "5.0", value)
	assert.Empty(t, params.Aggregates, "literal values must not register aggregates")
}

func TestResolveValue_LiteralSymbol(t *testing.T) {
	// A bare function name in the value attribute passes through verbatim;
	// the resolver never interprets the content.
	params := &rba.Parameters{}
	node := ValueNode{Value: strPtr("maintenanceATP")}

	value, err := ResolveValue(node, "hint", params)
	require.NoError(t, err)
	assert.Equal(t, "maintenanceATP", value)
}

func TestResolveValue_ValueWinsOverReferences(t *testing.T) {
	params := &rba.Parameters{}
	node := ValueNode{
		Value:              strPtr("1.5"),
		FunctionReferences: []FunctionRef{{Function: "F1"}, {Function: "F2"}},
	}

	value, err := ResolveValue(node, "hint", params)
	require.NoError(t, err)
	assert.Equal(t, "1.5", value)
	assert.Empty(t, params.Aggregates)
}

func TestResolveValue_SingleReference(t *testing.T) {
	params := &rba.Parameters{}
	node := ValueNode{FunctionReferences: []FunctionRef{{Function: "F1"}}}

	value, err := ResolveValue(node, "hint", params)
	require.NoError(t, err)
	assert.Equal(t, "F1", value)
	assert.Empty(t, params.Aggregates, "single reference collapses without an aggregate")
}

func TestResolveValue_MultipleReferences(t *testing.T) {
	params := &rba.Parameters{}
	node := ValueNode{FunctionReferences: []FunctionRef{{Function: "F1"}, {Function: "F2"}}}

	value, err := ResolveValue(node, "X_flux", params)
	require.NoError(t, err)
	assert.Equal(t, "X_flux", value)

	require.Len(t, params.Aggregates, 1)
	agg := params.Aggregates[0]
	assert.Equal(t, "X_flux", agg.ID)
	assert.Equal(t, rba.AggregateTypeMultiplication, agg.Type)
	require.Len(t, agg.FunctionReferences, 2)
	assert.Equal(t, "F1", agg.FunctionReferences[0].Function)
	assert.Equal(t, "F2", agg.FunctionReferences[1].Function)
}

func TestResolveValue_ThreeReferences_SourceOrder(t *testing.T) {
	params := &rba.Parameters{}
	node := ValueNode{FunctionReferences: []FunctionRef{
		{Function: "Fc"}, {Function: "Fa"}, {Function: "Fb"},
	}}

	_, err := ResolveValue(node, "hint", params)
	require.NoError(t, err)

	require.Len(t, params.Aggregates, 1)
	refs := params.Aggregates[0].FunctionReferences
	require.Len(t, refs, 3)
	assert.Equal(t, "Fc", refs[0].Function)
	assert.Equal(t, "Fa", refs[1].Function)
	assert.Equal(t, "Fb", refs[2].Function)
}

func TestResolveValue_Malformed(t *testing.T) {
	params := &rba.Parameters{}

	_, err := ResolveValue(ValueNode{}, "P_ribosome_capacity", params)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rba.ErrMalformedModel))

	var nodeErr *MalformedValueNodeError
	require.True(t, errors.As(err, &nodeErr))
	assert.Equal(t, "P_ribosome_capacity", nodeErr.Context)
	assert.Empty(t, params.Aggregates)
}

func TestResolveValue_EmptyValueAttributeIsStillAValue(t *testing.T) {
	// An explicitly empty value attribute is distinct from an absent one.
	params := &rba.Parameters{}
	node := ValueNode{Value: strPtr("")}

	value, err := ResolveValue(node, "hint", params)
	require.NoError(t, err)
	assert.Equal(t, "", value)
}
