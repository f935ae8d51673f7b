package rba

import "encoding/xml"

// Processes holds cellular processes (translation, folding, maintenance, ...)
// and the component maps describing their per-component operating costs.
type Processes struct {
	XMLName       xml.Name       `xml:"RBAProcesses"`
	Processes     []Process      `xml:"listOfProcesses>process"`
	ComponentMaps []ComponentMap `xml:"listOfComponentMaps>componentMap"`
}

// Process is one cellular process: an optional molecular machine with a
// capacity constraint, production/degradation operations, and the resource
// targets the process imposes on the solver.
type Process struct {
	ID         string     `xml:"id,attr"`
	Name       string     `xml:"name,attr"`
	Machinery  Machinery  `xml:"machinery"`
	Operations Operations `xml:"operations"`
	Targets    Targets    `xml:"targets"`
}

// Machinery couples a machinery composition with its catalytic capacity.
// Capacity value is a parameter expression (literal, function id or
// aggregate id).
type Machinery struct {
	MachineryComposition MachineryComposition `xml:"machineryComposition"`
	Capacity             Capacity             `xml:"capacity"`
}

// Capacity is the per-unit throughput of a process machine.
type Capacity struct {
	Value string `xml:"value,attr,omitempty"`
}

// Operations lists what a process produces and degrades, by component map.
type Operations struct {
	Productions  []Operation `xml:"listOfProductions>production"`
	Degradations []Operation `xml:"listOfDegradations>degradation"`
}

// Operation applies one component map to one macromolecule set.
type Operation struct {
	ComponentMap string `xml:"componentMap,attr"`
	Set          string `xml:"set,attr,omitempty"`
}

// Targets groups the resource targets of a process into the four target
// buckets. Concentrations are growth-dilution compensated; production and
// degradation fluxes are absolute; reaction fluxes constrain a named
// reaction instead of a species.
type Targets struct {
	Concentrations    []TargetSpecies  `xml:"listOfConcentrations>targetSpecies"`
	ProductionFluxes  []TargetSpecies  `xml:"listOfProductionFluxes>targetSpecies"`
	DegradationFluxes []TargetSpecies  `xml:"listOfDegradationFluxes>targetSpecies"`
	ReactionFluxes    []TargetReaction `xml:"listOfReactionFluxes>targetReaction"`
}

// TargetSpecies imposes a concentration or flux target on one species.
type TargetSpecies struct {
	Species string `xml:"species,attr"`
	Value   string `xml:"value,attr,omitempty"`
}

// TargetReaction bounds the flux of one reaction.
type TargetReaction struct {
	Reaction   string `xml:"reaction,attr"`
	Value      string `xml:"value,attr,omitempty"`
	LowerBound string `xml:"lowerBound,attr,omitempty"`
	UpperBound string `xml:"upperBound,attr,omitempty"`
}

// ComponentMap describes the metabolic cost of processing one component
// class, plus a constant per-molecule cost.
type ComponentMap struct {
	ID           string       `xml:"id,attr"`
	ConstantCost ConstantCost `xml:"constantCost"`
	Costs        []Cost       `xml:"cost"`
}

// ConstantCost is the fixed cost charged once per processed macromolecule.
type ConstantCost struct {
	Reactants []SpeciesReference `xml:"listOfReactants>speciesReference"`
	Products  []SpeciesReference `xml:"listOfProducts>speciesReference"`
}

// Cost is the per-occurrence cost of processing one component.
type Cost struct {
	Component      string             `xml:"component,attr"`
	ProcessingCost string             `xml:"processingCost,attr,omitempty"`
	Reactants      []SpeciesReference `xml:"listOfReactants>speciesReference"`
	Products       []SpeciesReference `xml:"listOfProducts>speciesReference"`
}
