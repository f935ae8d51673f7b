package convert

import (
	"time"

	"github.com/google/uuid"

	"github.com/rbatools/rbaconv/pkg/rba"
)

// Report summarizes one conversion run.
type Report struct {
	// RunID identifies the run in logs and the console summary.
	RunID uuid.UUID

	// Duration is the wall-clock time of the whole conversion.
	Duration time.Duration

	// Section sizes of the converted model.
	Species    int
	Reactions  int
	Enzymes    int
	Processes  int
	Aggregates int

	// Renamed counts species identifiers changed by the normalization pass,
	// Patched the data-specific machinery substitutions.
	Renamed int
	Patched int

	// Warnings holds dangling-reference messages (empty in strict mode,
	// which turns them into an error instead).
	Warnings []string

	// Checksums maps written file names to their SHA-256 digests.
	Checksums map[string]string

	started time.Time
}

func newReport() *Report {
	return &Report{
		RunID:   uuid.New(),
		started: time.Now(),
	}
}

func (r *Report) finish(model *rba.Model) {
	r.Duration = time.Since(r.started)
	r.Species = len(model.Metabolism.Species)
	r.Reactions = len(model.Metabolism.Reactions)
	r.Enzymes = len(model.Enzymes.Enzymes)
	r.Processes = len(model.Processes.Processes)
	r.Aggregates = len(model.Parameters.Aggregates)
}
