package rba

import "encoding/xml"

// Parameters holds growth-rate dependent functions, named aggregates built
// from them, and compartment density constraints.
//
// The aggregate collection doubles as the registry that legacy readers append
// to when they flatten multi-reference value nodes. It must therefore be
// fully populated before any section referencing aggregates by name is
// serialized.
type Parameters struct {
	XMLName         xml.Name        `xml:"RBAParameters"`
	TargetDensities []TargetDensity `xml:"listOfTargetDensities>targetDensity"`
	Functions       []Function      `xml:"listOfFunctions>function"`
	Aggregates      []Aggregate     `xml:"listOfAggregates>aggregate"`
}

// TargetDensity bounds the macromolecule density of one compartment.
// UpperBound is a parameter expression: a numeric literal, a function id or
// an aggregate id.
type TargetDensity struct {
	Compartment string `xml:"compartment,attr"`
	UpperBound  string `xml:"upperBound,attr,omitempty"`
}

// Function is a named parameter function of one variable (growth rate unless
// Variable names something else, e.g. a medium concentration).
type Function struct {
	ID         string              `xml:"id,attr"`
	Type       string              `xml:"type,attr"`
	Variable   string              `xml:"variable,attr,omitempty"`
	Parameters []FunctionParameter `xml:"listOfParameters>parameter"`
}

// FunctionParameter is one named constant of a Function.
type FunctionParameter struct {
	ID    string `xml:"id,attr"`
	Value string `xml:"value,attr"`
}

// Aggregate combines several functions into one value using Type as the
// combining operator.
type Aggregate struct {
	ID                 string              `xml:"id,attr"`
	Type               string              `xml:"type,attr"`
	FunctionReferences []FunctionReference `xml:"listOfFunctionReferences>functionReference"`
}

// FunctionReference points at a Function by id. Owned by exactly one
// Aggregate.
type FunctionReference struct {
	Function string `xml:"function,attr"`
}

// AggregateTypeMultiplication is the only aggregate operator the converter
// emits: referenced functions are multiplied together.
const AggregateTypeMultiplication = "multiplication"

// FunctionByID returns the function with the given id, or nil.
func (p *Parameters) FunctionByID(id string) *Function {
	for i := range p.Functions {
		if p.Functions[i].ID == id {
			return &p.Functions[i]
		}
	}
	return nil
}

// AggregateByID returns the aggregate with the given id, or nil.
func (p *Parameters) AggregateByID(id string) *Aggregate {
	for i := range p.Aggregates {
		if p.Aggregates[i].ID == id {
			return &p.Aggregates[i]
		}
	}
	return nil
}
