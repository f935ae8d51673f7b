package rba

import "encoding/xml"

// Metabolism holds compartments, metabolic species and reactions.
type Metabolism struct {
	XMLName      xml.Name           `xml:"RBAMetabolism"`
	Compartments []Compartment      `xml:"listOfCompartments>compartment"`
	Species      []Species          `xml:"listOfSpecies>species"`
	Reactions    []Reaction         `xml:"listOfReactions>reaction"`
}

// Compartment is a cell compartment referenced by density constraints and
// macromolecule locations.
type Compartment struct {
	ID string `xml:"id,attr"`
}

// Species is a metabolite. BoundaryCondition marks species whose
// concentration is fixed by the environment.
type Species struct {
	ID                string `xml:"id,attr"`
	BoundaryCondition bool   `xml:"boundaryCondition,attr"`
}

// Reaction is a metabolic reaction with stoichiometric reactants and products.
type Reaction struct {
	ID         string             `xml:"id,attr"`
	Reversible bool               `xml:"reversible,attr"`
	Reactants  []SpeciesReference `xml:"listOfReactants>speciesReference"`
	Products   []SpeciesReference `xml:"listOfProducts>speciesReference"`
}

// SpeciesReference links a reaction or machinery composition to a species by
// id. The species is not owned; resolution happens by name at constraint
// build time.
type SpeciesReference struct {
	Species       string  `xml:"species,attr"`
	Stoichiometry float64 `xml:"stoichiometry,attr"`
}
