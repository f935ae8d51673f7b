package legacy

import (
	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/pkg/rba"
)

type legacyProcesses struct {
	Processes     *legacyProcessList   `xml:"listOfProcesses"`
	ComponentMaps []legacyComponentMap `xml:"listOfComponentMaps>componentMap"`
}

type legacyProcessList struct {
	Processes []legacyProcess `xml:"process"`
}

type legacyProcess struct {
	ID                 string                    `xml:"id,attr"`
	Name               string                    `xml:"name,attr"`
	CapacityConstraint *legacyCapacityConstraint `xml:"capacityConstraint"`
	OperatingCosts     *legacyOperatingCosts     `xml:"operatingCosts"`
	Targets            *legacyTargets            `xml:"targets"`
}

type legacyCapacityConstraint struct {
	MachineryComposition *legacyMachineryComposition `xml:"machineryComposition"`
	Capacity             *legacyCapacity             `xml:"capacity"`
}

type legacyCapacity struct {
	ValueNode
}

type legacyOperatingCosts struct {
	Productions  []legacyOperation `xml:"production"`
	Degradations []legacyOperation `xml:"degradation"`
}

type legacyOperation struct {
	ComponentMap string `xml:"componentMap,attr"`
	Set          string `xml:"set,attr"`
}

type legacyTargets struct {
	TargetValues    []legacyTargetValue    `xml:"targetValue"`
	TargetReactions []legacyTargetReaction `xml:"targetReaction"`
}

type legacyTargetValue struct {
	Species              string `xml:"species,attr"`
	Degradation          string `xml:"degradation,attr"`
	DilutionCompensation string `xml:"dilution_compensation,attr"`
	ValueNode
}

type legacyTargetReaction struct {
	Reaction string `xml:"reaction,attr"`
	ValueNode
}

type legacyComponentMap struct {
	ID           string              `xml:"id,attr"`
	ConstantCost *legacyConstantCost `xml:"constantCost"`
	Costs        []legacyCost        `xml:"cost"`
}

type legacyConstantCost struct {
	Reactants []rba.SpeciesReference `xml:"listOfReactants>speciesReference"`
	Products  []rba.SpeciesReference `xml:"listOfProducts>speciesReference"`
}

type legacyCost struct {
	Component      string                 `xml:"component,attr"`
	ProcessingCost string                 `xml:"processing_cost,attr"`
	Reactants      []rba.SpeciesReference `xml:"listOfReactants>speciesReference"`
	Products       []rba.SpeciesReference `xml:"listOfProducts>speciesReference"`
}

// ReadProcesses reads the legacy processes file. It depends on the shared
// parameter registry: capacity constraints and target values with multiple
// function references register new aggregates in params.
//
// Species targets are classified into their bucket by ClassifyTarget;
// reaction targets always land in the reaction-flux bucket.
func ReadProcesses(provider filesystem.Provider, dir string, params *rba.Parameters) (rba.Processes, error) {
	var result rba.Processes

	data, err := readInput(provider, dir, rba.ProcessesFile)
	if err != nil {
		return result, err
	}
	var doc legacyProcesses
	if err := decodeInput(data, rba.ProcessesFile, &doc); err != nil {
		return result, err
	}
	if doc.Processes == nil {
		return result, &MissingRequiredSubtreeError{File: rba.ProcessesFile, Subtree: "listOfProcesses"}
	}

	for _, p := range doc.Processes.Processes {
		process := rba.Process{ID: p.ID, Name: p.Name}

		if cc := p.CapacityConstraint; cc != nil {
			if cc.MachineryComposition == nil {
				return result, &MissingRequiredSubtreeError{
					File: rba.ProcessesFile, Subtree: "machineryComposition", Context: p.ID,
				}
			}
			if cc.Capacity == nil {
				return result, &MissingRequiredSubtreeError{
					File: rba.ProcessesFile, Subtree: "capacity", Context: p.ID,
				}
			}
			process.Machinery.MachineryComposition = rba.MachineryComposition{
				Reactants: cc.MachineryComposition.Reactants,
				Products:  cc.MachineryComposition.Products,
			}
			process.Machinery.Capacity.Value, err = ResolveValue(cc.Capacity.ValueNode, p.ID+"_capacity", params)
			if err != nil {
				return result, wrapNodeError(err, rba.ProcessesFile)
			}
		}

		if oc := p.OperatingCosts; oc != nil {
			for _, prod := range oc.Productions {
				process.Operations.Productions = append(process.Operations.Productions,
					rba.Operation{ComponentMap: prod.ComponentMap, Set: prod.Set})
			}
			for _, deg := range oc.Degradations {
				process.Operations.Degradations = append(process.Operations.Degradations,
					rba.Operation{ComponentMap: deg.ComponentMap, Set: deg.Set})
			}
		}

		if t := p.Targets; t != nil {
			for _, tv := range t.TargetValues {
				target := rba.TargetSpecies{Species: tv.Species}
				target.Value, err = ResolveValue(tv.ValueNode, tv.Species+"_concentration", params)
				if err != nil {
					return result, wrapNodeError(err, rba.ProcessesFile)
				}
				switch ClassifyTarget(tv.Degradation, tv.DilutionCompensation) {
				case TargetDegradationFlux:
					process.Targets.DegradationFluxes = append(process.Targets.DegradationFluxes, target)
				case TargetProductionFlux:
					process.Targets.ProductionFluxes = append(process.Targets.ProductionFluxes, target)
				default:
					process.Targets.Concentrations = append(process.Targets.Concentrations, target)
				}
			}
			for _, tr := range t.TargetReactions {
				target := rba.TargetReaction{Reaction: tr.Reaction}
				target.Value, err = ResolveValue(tr.ValueNode, tr.Reaction+"_flux", params)
				if err != nil {
					return result, wrapNodeError(err, rba.ProcessesFile)
				}
				process.Targets.ReactionFluxes = append(process.Targets.ReactionFluxes, target)
			}
		}

		result.Processes = append(result.Processes, process)
	}

	for _, m := range doc.ComponentMaps {
		cm := rba.ComponentMap{ID: m.ID}
		if m.ConstantCost != nil {
			cm.ConstantCost = rba.ConstantCost{
				Reactants: m.ConstantCost.Reactants,
				Products:  m.ConstantCost.Products,
			}
		}
		for _, c := range m.Costs {
			cm.Costs = append(cm.Costs, rba.Cost{
				Component:      c.Component,
				ProcessingCost: c.ProcessingCost,
				Reactants:      c.Reactants,
				Products:       c.Products,
			})
		}
		result.ComponentMaps = append(result.ComponentMaps, cm)
	}
	return result, nil
}
