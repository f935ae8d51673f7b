package rba

import "encoding/xml"

// Macromolecules holds one class of macromolecules (proteins, RNAs or DNA)
// together with the components they are polymerized from.
type Macromolecules struct {
	XMLName        xml.Name        `xml:"RBAMacromolecules"`
	Components     []Component     `xml:"listOfComponents>component"`
	Macromolecules []Macromolecule `xml:"listOfMacromolecules>macromolecule"`
}

// Component is a building block of macromolecules (amino acid, nucleotide,
// cofactor). Weight contributes to compartment density constraints.
type Component struct {
	ID     string `xml:"id,attr"`
	Name   string `xml:"name,attr,omitempty"`
	Type   string `xml:"type,attr,omitempty"`
	Weight string `xml:"weight,attr,omitempty"`
}

// Macromolecule is a polymer located in one compartment, described by the
// stoichiometry of its components.
type Macromolecule struct {
	ID          string               `xml:"id,attr"`
	Compartment string               `xml:"compartment,attr"`
	Composition []ComponentReference `xml:"composition>componentReference"`
}

// ComponentReference gives the number of occurrences of one component within
// a macromolecule.
type ComponentReference struct {
	Component     string  `xml:"component,attr"`
	Stoichiometry float64 `xml:"stoichiometry,attr"`
}
