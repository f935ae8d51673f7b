package rba

// Model is a complete RBA model: one value per model file. Sections are
// assembled independently and reference each other by identifier only.
type Model struct {
	Metabolism Metabolism
	Parameters Parameters
	Proteins   Macromolecules
	RNAs       Macromolecules
	DNA        Macromolecules
	Enzymes    Enzymes
	Processes  Processes
	Medium     Medium
}

// NewModel returns an empty model ready to be populated section by section.
func NewModel() *Model {
	return &Model{}
}
