package legacy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/pkg/rba"
)

func TestReadMacromolecules_Proteins(t *testing.T) {
	proteins, err := ReadMacromolecules(fixtureFS(), fixtureDir, rba.ProteinsFile, KindProtein)
	require.NoError(t, err)

	require.Len(t, proteins.Components, 2)
	assert.Equal(t, "A", proteins.Components[0].ID)
	assert.Equal(t, "alanine", proteins.Components[0].Name)
	assert.Equal(t, "amino_acid", proteins.Components[0].Type)

	require.Len(t, proteins.Macromolecules, 1)
	p := proteins.Macromolecules[0]
	assert.Equal(t, "BSU00010", p.ID)
	assert.Equal(t, "cytoplasm", p.Compartment)
	require.Len(t, p.Composition, 2)
	assert.Equal(t, "A", p.Composition[0].Component)
	assert.Equal(t, 12.0, p.Composition[0].Stoichiometry)
}

func TestReadMacromolecules_RNAsAndDNA(t *testing.T) {
	mfs := fixtureFS()

	rnas, err := ReadMacromolecules(mfs, fixtureDir, rba.RNAsFile, KindRNA)
	require.NoError(t, err)
	require.Len(t, rnas.Macromolecules, 1)
	assert.Equal(t, "m_rna", rnas.Macromolecules[0].ID)

	dna, err := ReadMacromolecules(mfs, fixtureDir, rba.DNAFile, KindDNA)
	require.NoError(t, err)
	require.Len(t, dna.Macromolecules, 1)
	assert.Equal(t, "chromosome", dna.Macromolecules[0].ID)
}

func TestReadMacromolecules_KindFiltersTags(t *testing.T) {
	// Asking for rna entries in the proteins file yields no macromolecules;
	// the wrapper tags select, they do not fail.
	result, err := ReadMacromolecules(fixtureFS(), fixtureDir, rba.ProteinsFile, KindRNA)
	require.NoError(t, err)
	assert.Empty(t, result.Macromolecules)
}

func TestReadMacromolecules_MissingComponents(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile(fixtureDir+"/proteins.xml", []byte(`<RBAProteins><listOfSpecies/></RBAProteins>`))

	_, err := ReadMacromolecules(mfs, fixtureDir, rba.ProteinsFile, KindProtein)
	require.Error(t, err)

	var subtreeErr *MissingRequiredSubtreeError
	require.True(t, errors.As(err, &subtreeErr))
	assert.Equal(t, "listOfComponents", subtreeErr.Subtree)
}

func TestReadMacromolecules_MissingSpeciesList(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile(fixtureDir+"/proteins.xml", []byte(`<RBAProteins><listOfComponents/></RBAProteins>`))

	_, err := ReadMacromolecules(mfs, fixtureDir, rba.ProteinsFile, KindProtein)
	require.Error(t, err)

	var subtreeErr *MissingRequiredSubtreeError
	require.True(t, errors.As(err, &subtreeErr))
	assert.Equal(t, "listOfSpecies", subtreeErr.Subtree)
}

func TestReadMacromolecules_UnknownKind(t *testing.T) {
	_, err := ReadMacromolecules(fixtureFS(), fixtureDir, rba.ProteinsFile, MacromoleculeKind("lipid"))
	assert.Error(t, err)
}
