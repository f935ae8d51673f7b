package legacy

import (
	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/pkg/rba"
)

type legacyEnzymes struct {
	EfficiencyFunctions *legacyFunctionList `xml:"listOfEfficiencyFunctions"`
	Enzymes             []legacyEnzyme      `xml:"listOfEnzymes>enzyme"`
}

type legacyEnzyme struct {
	ID                   string                     `xml:"id,attr"`
	ZeroCost             string                     `xml:"zero_cost,attr"`
	MachineryComposition *legacyMachineryComposition `xml:"machineryComposition"`
	EnzymaticActivity    *legacyEnzymaticActivity    `xml:"enzymaticActivity"`
}

type legacyMachineryComposition struct {
	Reactants []rba.SpeciesReference `xml:"listOfReactants>speciesReference"`
	Products  []rba.SpeciesReference `xml:"listOfProducts>speciesReference"`
}

type legacyEnzymaticActivity struct {
	EnzymeEfficiencies    []legacyEnzymeEfficiency     `xml:"enzymeEfficiency"`
	TransporterEfficiency *legacyTransporterEfficiency `xml:"transporterEfficiency"`
}

type legacyEnzymeEfficiency struct {
	Function   string                  `xml:"function,attr"`
	Parameters []rba.FunctionParameter `xml:"listOfParameters>parameter"`
}

type legacyTransporterEfficiency struct {
	Functions []rba.Function `xml:"function"`
}

// ReadEnzymes reads the legacy enzymes file. Machinery composition and
// enzymatic activity subtrees are optional per enzyme; absence leaves the
// destination fields at their zero values. The efficiency function list is
// structurally required.
func ReadEnzymes(provider filesystem.Provider, dir string) (rba.Enzymes, error) {
	var result rba.Enzymes

	data, err := readInput(provider, dir, rba.EnzymesFile)
	if err != nil {
		return result, err
	}
	var doc legacyEnzymes
	if err := decodeInput(data, rba.EnzymesFile, &doc); err != nil {
		return result, err
	}
	if doc.EfficiencyFunctions == nil {
		return result, &MissingRequiredSubtreeError{File: rba.EnzymesFile, Subtree: "listOfEfficiencyFunctions"}
	}

	result.EfficiencyFunctions = doc.EfficiencyFunctions.Functions
	for _, e := range doc.Enzymes {
		enzyme := rba.Enzyme{
			ID:       e.ID,
			ZeroCost: rba.IsTrue(e.ZeroCost),
		}
		if e.MachineryComposition != nil {
			enzyme.MachineryComposition = rba.MachineryComposition{
				Reactants: e.MachineryComposition.Reactants,
				Products:  e.MachineryComposition.Products,
			}
		}
		if e.EnzymaticActivity != nil {
			for _, eff := range e.EnzymaticActivity.EnzymeEfficiencies {
				enzyme.EnzymaticActivity.EnzymeEfficiencies = append(
					enzyme.EnzymaticActivity.EnzymeEfficiencies,
					rba.EnzymeEfficiency{
						Function:   eff.Function,
						Parameters: eff.Parameters,
					})
			}
			if te := e.EnzymaticActivity.TransporterEfficiency; te != nil {
				enzyme.EnzymaticActivity.TransporterEfficiency = te.Functions
			}
		}
		result.Enzymes = append(result.Enzymes, enzyme)
	}
	return result, nil
}
