package legacy

import (
	"fmt"

	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/pkg/rba"
)

// MacromoleculeKind selects which element tag holds the macromolecules in a
// legacy macromolecule file.
type MacromoleculeKind string

const (
	KindProtein MacromoleculeKind = "protein"
	KindRNA     MacromoleculeKind = "rna"
	KindDNA     MacromoleculeKind = "dna"
)

type legacyMacromolecules struct {
	Components *legacyComponentList `xml:"listOfComponents"`
	Species    *legacySpeciesList   `xml:"listOfSpecies"`
}

type legacyComponentList struct {
	Components []rba.Component `xml:"component"`
}

type legacySpeciesList struct {
	Proteins []legacyMacromolecule `xml:"protein"`
	RNAs     []legacyMacromolecule `xml:"rna"`
	DNA      []legacyMacromolecule `xml:"dna"`
}

type legacyMacromolecule struct {
	ID          string                   `xml:"id,attr"`
	Compartment string                   `xml:"compartment,attr"`
	Composition []rba.ComponentReference `xml:"composition>componentReference"`
}

// ReadMacromolecules reads one legacy macromolecule file (proteins, RNAs or
// DNA; the kind names the per-molecule element tag). Components and
// macromolecules transcribe one-to-one.
func ReadMacromolecules(provider filesystem.Provider, dir, file string, kind MacromoleculeKind) (rba.Macromolecules, error) {
	var result rba.Macromolecules

	data, err := readInput(provider, dir, file)
	if err != nil {
		return result, err
	}
	var doc legacyMacromolecules
	if err := decodeInput(data, file, &doc); err != nil {
		return result, err
	}
	if doc.Components == nil {
		return result, &MissingRequiredSubtreeError{File: file, Subtree: "listOfComponents"}
	}
	if doc.Species == nil {
		return result, &MissingRequiredSubtreeError{File: file, Subtree: "listOfSpecies"}
	}

	var molecules []legacyMacromolecule
	switch kind {
	case KindProtein:
		molecules = doc.Species.Proteins
	case KindRNA:
		molecules = doc.Species.RNAs
	case KindDNA:
		molecules = doc.Species.DNA
	default:
		return result, fmt.Errorf("unknown macromolecule kind %q", kind)
	}

	result.Components = doc.Components.Components
	for _, m := range molecules {
		result.Macromolecules = append(result.Macromolecules, rba.Macromolecule{
			ID:          m.ID,
			Compartment: m.Compartment,
			Composition: m.Composition,
		})
	}
	return result, nil
}
