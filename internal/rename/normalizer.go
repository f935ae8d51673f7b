// Package rename rewrites legacy metabolite identifiers to the current
// naming convention and applies the rewrite across a fully assembled model.
package rename

import "strings"

const (
	// metabolitePrefix marks legacy metabolite identifiers. Anything without
	// it (compartments, reactions, processes, macromolecules) is left alone.
	metabolitePrefix = "m_"

	// externalSuffix marks legacy external-compartment species.
	externalSuffix = "_xt"

	// cytosolSuffix and externalCompartmentSuffix are the current-format
	// compartment markers.
	cytosolSuffix             = "_c"
	externalCompartmentSuffix = "_e"
)

// Normalize rewrites one legacy metabolite id to the current convention:
// the metabolite marker prefix is dropped, the name is capitalized, and the
// compartment suffix is appended.
//
//	m_glc_xt -> Glc_e    (external species become extracellular)
//	m_atp    -> Atp_c    (everything else becomes cytosolic)
//	atp      -> atp      (non-metabolites pass through)
//
// The function is pure and idempotent: an already-normalized id no longer
// starts with the metabolite prefix, so a second application is a no-op.
func Normalize(id string) string {
	if !strings.HasPrefix(id, metabolitePrefix) {
		return id
	}
	name := strings.TrimPrefix(id, metabolitePrefix)
	if strings.HasSuffix(name, externalSuffix) {
		return capitalize(strings.TrimSuffix(name, externalSuffix)) + externalCompartmentSuffix
	}
	return capitalize(name) + cytosolSuffix
}

// capitalize upper-cases the first byte. Legacy ids are plain ASCII.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
