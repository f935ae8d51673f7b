package rba

import "encoding/xml"

// Enzymes holds the enzyme list and the efficiency function templates shared
// by all enzymes.
type Enzymes struct {
	XMLName             xml.Name   `xml:"RBAEnzymes"`
	EfficiencyFunctions []Function `xml:"listOfEfficiencyFunctions>function"`
	Enzymes             []Enzyme   `xml:"listOfEnzymes>enzyme"`
}

// Enzyme catalyzes one reaction. ZeroCost enzymes impose no machinery
// requirement on the solver.
type Enzyme struct {
	ID                   string               `xml:"id,attr"`
	ZeroCost             bool                 `xml:"zeroCost,attr"`
	MachineryComposition MachineryComposition `xml:"machineryComposition"`
	EnzymaticActivity    EnzymaticActivity    `xml:"enzymaticActivity"`
}

// MachineryComposition lists the species an enzyme or process machine is
// built from (reactants) and the species released on assembly (products).
type MachineryComposition struct {
	Reactants []SpeciesReference `xml:"listOfReactants>speciesReference"`
	Products  []SpeciesReference `xml:"listOfProducts>speciesReference"`
}

// IsEmpty reports whether the composition holds no species at all.
func (m *MachineryComposition) IsEmpty() bool {
	return len(m.Reactants) == 0 && len(m.Products) == 0
}

// EnzymaticActivity carries the efficiency definitions of one enzyme: one
// efficiency function instantiation per condition, plus an optional
// transporter efficiency whose functions depend on external metabolite
// concentrations (the Variable of each function names the metabolite).
type EnzymaticActivity struct {
	EnzymeEfficiencies    []EnzymeEfficiency `xml:"listOfEnzymeEfficiencies>enzymeEfficiency"`
	TransporterEfficiency []Function         `xml:"transporterEfficiency>function"`
}

// EnzymeEfficiency instantiates one efficiency function with concrete
// parameter values.
type EnzymeEfficiency struct {
	Function   string              `xml:"function,attr"`
	Parameters []FunctionParameter `xml:"listOfParameters>parameter"`
}
