package rename

import "github.com/rbatools/rbaconv/pkg/rba"

// RewriteModel applies Normalize to every species identifier in a fully
// assembled model and returns the number of identifiers changed.
//
// The model graph must be closed before this runs: the rewrite is keyed by
// old id, so sections populated afterwards would dangle. Covered locations:
// species definitions, reaction reactants/products, enzyme machinery
// reactants/products and transporter-efficiency variables, process machinery
// reactants/products, species targets of all three buckets, and component
// map reactants/products. A single missed location would produce a dangling
// reference in the output.
func RewriteModel(model *rba.Model) int {
	renamed := 0
	rewrite := func(id *string) {
		if updated := Normalize(*id); updated != *id {
			*id = updated
			renamed++
		}
	}
	rewriteRefs := func(refs []rba.SpeciesReference) {
		for i := range refs {
			rewrite(&refs[i].Species)
		}
	}

	// metabolism
	for i := range model.Metabolism.Species {
		rewrite(&model.Metabolism.Species[i].ID)
	}
	for i := range model.Metabolism.Reactions {
		r := &model.Metabolism.Reactions[i]
		rewriteRefs(r.Reactants)
		rewriteRefs(r.Products)
	}

	// enzymes
	for i := range model.Enzymes.Enzymes {
		e := &model.Enzymes.Enzymes[i]
		rewriteRefs(e.MachineryComposition.Reactants)
		rewriteRefs(e.MachineryComposition.Products)
		for j := range e.EnzymaticActivity.TransporterEfficiency {
			rewrite(&e.EnzymaticActivity.TransporterEfficiency[j].Variable)
		}
	}

	// processes
	for i := range model.Processes.Processes {
		p := &model.Processes.Processes[i]
		rewriteRefs(p.Machinery.MachineryComposition.Reactants)
		rewriteRefs(p.Machinery.MachineryComposition.Products)
		for j := range p.Targets.Concentrations {
			rewrite(&p.Targets.Concentrations[j].Species)
		}
		for j := range p.Targets.ProductionFluxes {
			rewrite(&p.Targets.ProductionFluxes[j].Species)
		}
		for j := range p.Targets.DegradationFluxes {
			rewrite(&p.Targets.DegradationFluxes[j].Species)
		}
	}
	for i := range model.Processes.ComponentMaps {
		m := &model.Processes.ComponentMaps[i]
		rewriteRefs(m.ConstantCost.Reactants)
		rewriteRefs(m.ConstantCost.Products)
		for j := range m.Costs {
			rewriteRefs(m.Costs[j].Reactants)
			rewriteRefs(m.Costs[j].Products)
		}
	}

	return renamed
}
