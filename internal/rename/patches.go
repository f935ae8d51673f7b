package rename

import "github.com/rbatools/rbaconv/pkg/rba"

// machineryPatches is a data-specific correction table for one known input
// dataset: a few metabolites appear under a different name in the enzyme
// files than in the metabolism file. The substitutions run on enzyme
// machinery-composition reactants only, strictly before the general
// normalization pass, and nowhere else. Not a general rule; remove once the
// source data is fixed upstream.
var machineryPatches = map[string]string{
	"m_siroheme": "m_sheme",
	"m_biotin":   "m_bio",
	"m_b6":       "m_py5p",
}

// PatchEnzymeMachinery applies the machinery patch table in place and
// returns the number of substitutions made.
func PatchEnzymeMachinery(enzymes *rba.Enzymes) int {
	patched := 0
	for i := range enzymes.Enzymes {
		reactants := enzymes.Enzymes[i].MachineryComposition.Reactants
		for j := range reactants {
			if replacement, ok := machineryPatches[reactants[j].Species]; ok {
				reactants[j].Species = replacement
				patched++
			}
		}
	}
	return patched
}
