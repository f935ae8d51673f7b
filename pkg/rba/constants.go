package rba

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Conversion completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration or parameters
	ExitApprovalDenied    = 12 // User denied output overwrite approval
	ExitMalformedModel    = 20 // Structurally invalid input model
	ExitInputNotFound     = 21 // Required input file missing
	ExitDanglingReference = 22 // Species reference check failed (strict mode)
	ExitWriteFailed       = 23 // Output serialization failed
)

// Model file names. Input and output directories both use this fixed layout;
// the converter neither discovers nor renames files.
const (
	MetabolismFile = "metabolism.xml"
	ParametersFile = "parameters.xml"
	ProteinsFile   = "proteins.xml"
	RNAsFile       = "rnas.xml"
	DNAFile        = "dna.xml"
	EnzymesFile    = "enzymes.xml"
	ProcessesFile  = "processes.xml"
	MediumFile     = "medium.tsv"
)

// ModelFiles lists every file of a model directory in write order.
var ModelFiles = []string{
	MetabolismFile,
	ParametersFile,
	ProteinsFile,
	RNAsFile,
	DNAFile,
	EnzymesFile,
	ProcessesFile,
	MediumFile,
}

const (
	// DefaultInputDir is the input directory used when neither config nor
	// flags name one.
	DefaultInputDir = "old_data"

	// DefaultOutputDir is the output directory used when neither config nor
	// flags name one.
	DefaultOutputDir = "."
)
