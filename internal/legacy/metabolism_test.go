package legacy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/pkg/rba"
)

func TestReadMetabolism(t *testing.T) {
	metabolism, err := ReadMetabolism(fixtureFS(), fixtureDir)
	require.NoError(t, err)

	require.Len(t, metabolism.Compartments, 2)
	assert.Equal(t, "cytoplasm", metabolism.Compartments[0].ID)
	assert.Equal(t, "membrane", metabolism.Compartments[1].ID)

	require.Len(t, metabolism.Species, 2)
	assert.Equal(t, "m_glc_xt", metabolism.Species[0].ID)
	assert.True(t, metabolism.Species[0].BoundaryCondition)
	assert.Equal(t, "m_atp", metabolism.Species[1].ID)
	assert.False(t, metabolism.Species[1].BoundaryCondition)

	require.Len(t, metabolism.Reactions, 2)
	pts := metabolism.Reactions[0]
	assert.Equal(t, "R_pts", pts.ID)
	assert.False(t, pts.Reversible)
	require.Len(t, pts.Reactants, 1)
	assert.Equal(t, "m_glc_xt", pts.Reactants[0].Species)
	assert.Equal(t, 1.0, pts.Reactants[0].Stoichiometry)
	require.Len(t, pts.Products, 1)
	assert.Equal(t, "m_atp", pts.Products[0].Species)
	assert.Equal(t, 2.0, pts.Products[0].Stoichiometry)

	atpm := metabolism.Reactions[1]
	assert.Equal(t, "Eatpm", atpm.ID)
	assert.True(t, atpm.Reversible)
	assert.Empty(t, atpm.Reactants)
	assert.Empty(t, atpm.Products)
}

func TestReadMetabolism_MissingFile(t *testing.T) {
	_, err := ReadMetabolism(filesystem.NewMemoryFileSystem(), fixtureDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rba.ErrInputNotFound))
}

func TestReadMetabolism_MissingModel(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile(fixtureDir+"/metabolism.xml", []byte(`<sbml/>`))

	_, err := ReadMetabolism(mfs, fixtureDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rba.ErrMalformedModel))

	var subtreeErr *MissingRequiredSubtreeError
	require.True(t, errors.As(err, &subtreeErr))
	assert.Equal(t, "model", subtreeErr.Subtree)
}

func TestReadMetabolism_BrokenXML(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile(fixtureDir+"/metabolism.xml", []byte(`<sbml><model>`))

	_, err := ReadMetabolism(mfs, fixtureDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rba.ErrMalformedModel))
}
