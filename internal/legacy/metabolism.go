package legacy

import (
	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/pkg/rba"
)

// The legacy metabolism file is an SBML document. Only the subset the
// converter needs is decoded: compartments, species with their boundary
// condition, and reactions with reversibility and stoichiometry.
type sbmlDocument struct {
	Model *sbmlModel `xml:"model"`
}

type sbmlModel struct {
	Compartments []sbmlCompartment `xml:"listOfCompartments>compartment"`
	Species      []sbmlSpecies     `xml:"listOfSpecies>species"`
	Reactions    []sbmlReaction    `xml:"listOfReactions>reaction"`
}

type sbmlCompartment struct {
	ID string `xml:"id,attr"`
}

type sbmlSpecies struct {
	ID                string `xml:"id,attr"`
	BoundaryCondition string `xml:"boundaryCondition,attr"`
}

type sbmlReaction struct {
	ID         string                 `xml:"id,attr"`
	Reversible string                 `xml:"reversible,attr"`
	Reactants  []sbmlSpeciesReference `xml:"listOfReactants>speciesReference"`
	Products   []sbmlSpeciesReference `xml:"listOfProducts>speciesReference"`
}

type sbmlSpeciesReference struct {
	Species       string  `xml:"species,attr"`
	Stoichiometry float64 `xml:"stoichiometry,attr"`
}

// ReadMetabolism transcribes the SBML metabolism file into the current
// metabolism section: compartments, species and reactions, in source order.
func ReadMetabolism(provider filesystem.Provider, dir string) (rba.Metabolism, error) {
	var result rba.Metabolism

	data, err := readInput(provider, dir, rba.MetabolismFile)
	if err != nil {
		return result, err
	}
	var doc sbmlDocument
	if err := decodeInput(data, rba.MetabolismFile, &doc); err != nil {
		return result, err
	}
	if doc.Model == nil {
		return result, &MissingRequiredSubtreeError{File: rba.MetabolismFile, Subtree: "model"}
	}

	for _, c := range doc.Model.Compartments {
		result.Compartments = append(result.Compartments, rba.Compartment{ID: c.ID})
	}
	for _, s := range doc.Model.Species {
		result.Species = append(result.Species, rba.Species{
			ID:                s.ID,
			BoundaryCondition: rba.IsTrue(s.BoundaryCondition),
		})
	}
	for _, r := range doc.Model.Reactions {
		reaction := rba.Reaction{
			ID:         r.ID,
			Reversible: rba.IsTrue(r.Reversible),
		}
		for _, sr := range r.Reactants {
			reaction.Reactants = append(reaction.Reactants, rba.SpeciesReference{
				Species:       sr.Species,
				Stoichiometry: sr.Stoichiometry,
			})
		}
		for _, sr := range r.Products {
			reaction.Products = append(reaction.Products, rba.SpeciesReference{
				Species:       sr.Species,
				Stoichiometry: sr.Stoichiometry,
			})
		}
		result.Reactions = append(result.Reactions, reaction)
	}
	return result, nil
}
