package legacy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/pkg/rba"
)

func TestReadParameters(t *testing.T) {
	params, err := ReadParameters(fixtureFS(), fixtureDir)
	require.NoError(t, err)

	require.Len(t, params.TargetDensities, 2)
	assert.Equal(t, "cytoplasm", params.TargetDensities[0].Compartment)
	assert.Equal(t, "3.4", params.TargetDensities[0].UpperBound)

	// The membrane density carries two function references, so an aggregate
	// named after the compartment was registered.
	assert.Equal(t, "membrane", params.TargetDensities[1].Compartment)
	assert.Equal(t, "membrane_density", params.TargetDensities[1].UpperBound)
	require.Len(t, params.Aggregates, 1)
	agg := params.Aggregates[0]
	assert.Equal(t, "membrane_density", agg.ID)
	assert.Equal(t, rba.AggregateTypeMultiplication, agg.Type)
	require.Len(t, agg.FunctionReferences, 2)
	assert.Equal(t, "F_surface", agg.FunctionReferences[0].Function)
	assert.Equal(t, "F_scaling", agg.FunctionReferences[1].Function)

	require.Len(t, params.Functions, 2)
	fn := params.Functions[0]
	assert.Equal(t, "F_surface", fn.ID)
	assert.Equal(t, "linear", fn.Type)
	assert.Equal(t, "growth_rate", fn.Variable)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "LINEAR_COEF", fn.Parameters[0].ID)
	assert.Equal(t, "1.2", fn.Parameters[0].Value)
}

func TestReadParameters_MissingFunctions(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile(fixtureDir+"/parameters.xml", []byte(`<RBAParameters/>`))

	_, err := ReadParameters(mfs, fixtureDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rba.ErrMalformedModel))

	var subtreeErr *MissingRequiredSubtreeError
	require.True(t, errors.As(err, &subtreeErr))
	assert.Equal(t, "listOfFunctions", subtreeErr.Subtree)
}

func TestReadParameters_MalformedDensity(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile(fixtureDir+"/parameters.xml", []byte(`<RBAParameters>
  <listOfMaximalDensities>
    <maximalDensity compartment="cytoplasm"/>
  </listOfMaximalDensities>
  <listOfFunctions/>
</RBAParameters>`))

	_, err := ReadParameters(mfs, fixtureDir)
	require.Error(t, err)

	var nodeErr *MalformedValueNodeError
	require.True(t, errors.As(err, &nodeErr))
	assert.Equal(t, "cytoplasm_density", nodeErr.Context)
	assert.Equal(t, rba.ParametersFile, nodeErr.File)
}
