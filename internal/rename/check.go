package rename

import (
	"fmt"
	"sort"

	"github.com/rbatools/rbaconv/pkg/rba"
)

// CheckReferences verifies that every metabolite reference left in the model
// after normalization points at a defined species. It returns one message
// per distinct dangling id, sorted for stable output.
//
// Only locations that are metabolite references by construction are checked:
// reaction reactants/products, machinery compositions and component map
// costs. Species targets are skipped on purpose, since processes may target
// macromolecules (proteins, RNAs) that legitimately have no entry in the
// metabolism section.
func CheckReferences(model *rba.Model) []string {
	defined := make(map[string]bool, len(model.Metabolism.Species))
	for _, s := range model.Metabolism.Species {
		defined[s.ID] = true
	}
	macromolecule := make(map[string]bool)
	for _, section := range []*rba.Macromolecules{&model.Proteins, &model.RNAs, &model.DNA} {
		for _, m := range section.Macromolecules {
			macromolecule[m.ID] = true
		}
	}

	dangling := make(map[string]bool)
	checkRefs := func(refs []rba.SpeciesReference) {
		for _, ref := range refs {
			// Machinery compositions mix metabolites with macromolecules.
			if !defined[ref.Species] && !macromolecule[ref.Species] {
				dangling[ref.Species] = true
			}
		}
	}

	for _, r := range model.Metabolism.Reactions {
		checkRefs(r.Reactants)
		checkRefs(r.Products)
	}
	for _, e := range model.Enzymes.Enzymes {
		checkRefs(e.MachineryComposition.Reactants)
		checkRefs(e.MachineryComposition.Products)
	}
	for _, p := range model.Processes.Processes {
		checkRefs(p.Machinery.MachineryComposition.Reactants)
		checkRefs(p.Machinery.MachineryComposition.Products)
	}
	for _, m := range model.Processes.ComponentMaps {
		checkRefs(m.ConstantCost.Reactants)
		checkRefs(m.ConstantCost.Products)
		for _, c := range m.Costs {
			checkRefs(c.Reactants)
			checkRefs(c.Products)
		}
	}

	ids := make([]string, 0, len(dangling))
	for id := range dangling {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	warnings := make([]string, 0, len(ids))
	for _, id := range ids {
		warnings = append(warnings, fmt.Sprintf("dangling species reference: %s", id))
	}
	return warnings
}
