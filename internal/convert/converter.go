// Package convert orchestrates the conversion of a legacy RBA model
// directory into the current format revision.
package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rbatools/rbaconv/internal/checksum"
	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/internal/legacy"
	"github.com/rbatools/rbaconv/internal/rename"
	"github.com/rbatools/rbaconv/pkg/rba"
)

// Config carries the parameters of one conversion run.
type Config struct {
	// InputDir holds the legacy model files (metabolism.xml, parameters.xml,
	// proteins.xml, rnas.xml, dna.xml, enzymes.xml, processes.xml,
	// medium.tsv).
	InputDir string

	// OutputDir receives the converted model files.
	OutputDir string

	// Strict promotes dangling species references from warnings to a fatal
	// error.
	Strict bool

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the Config has all required fields.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory is required: %w", rba.ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required: %w", rba.ErrInvalidConfig)
	}
	return nil
}

// Converter runs the conversion pipeline. It is a one-shot batch service:
// readers run in dependency order, the rename pass runs over the closed
// model graph, and serialization is the terminal step. Nothing is written
// on failure.
type Converter struct {
	fs     filesystem.Provider
	logger rba.Logger
}

// New creates a Converter reading inputs through the given filesystem
// provider. Panics if provider or logger is nil.
func New(provider filesystem.Provider, logger rba.Logger) *Converter {
	if provider == nil {
		panic("provider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Converter{fs: provider, logger: logger}
}

// Run converts the model in cfg.InputDir and writes it to cfg.OutputDir.
func (c *Converter) Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	report := newReport()
	c.logger.Verbose("conversion run %s: %s -> %s", report.RunID, cfg.InputDir, cfg.OutputDir)

	model, err := c.assemble(cfg, report)
	if err != nil {
		return nil, err
	}

	report.Warnings = rename.CheckReferences(model)
	for _, w := range report.Warnings {
		c.logger.Error("%s", w)
	}
	if cfg.Strict && len(report.Warnings) > 0 {
		return nil, fmt.Errorf("%d unresolved species reference(s): %w",
			len(report.Warnings), rba.ErrDanglingReference)
	}

	if err := model.WriteFiles(cfg.OutputDir); err != nil {
		return nil, err
	}
	report.Checksums = c.digestOutput(cfg.OutputDir)

	report.finish(model)
	c.logger.Info("converted model written to %s", cfg.OutputDir)
	return report, nil
}

// digestOutput hashes the written model files so runs can be compared.
// A read-back failure here only loses the digest, never the conversion.
func (c *Converter) digestOutput(outputDir string) map[string]string {
	calc := checksum.New()
	digests := make(map[string]string, len(rba.ModelFiles))
	for _, name := range rba.ModelFiles {
		data, err := os.ReadFile(filepath.Join(outputDir, name))
		if err != nil {
			c.logger.Error("checksum skipped for %s: %v", name, err)
			continue
		}
		digests[name] = calc.CalculateRaw(data)
		c.logger.Verbose("sha256(%s) = %s", name, digests[name])
	}
	return digests
}

// assemble builds the in-memory model from the legacy files. Reader order
// matters: the parameters section owns the aggregate registry that the
// process reader appends to, and the rename pass must only run once every
// section is populated.
func (c *Converter) assemble(cfg Config, report *Report) (*rba.Model, error) {
	model := rba.NewModel()

	c.logger.Verbose("reading %s", rba.MetabolismFile)
	metabolism, err := legacy.ReadMetabolism(c.fs, cfg.InputDir)
	if err != nil {
		return nil, err
	}
	model.Metabolism = metabolism

	c.logger.Verbose("reading %s", rba.ParametersFile)
	params, err := legacy.ReadParameters(c.fs, cfg.InputDir)
	if err != nil {
		return nil, err
	}

	c.logger.Verbose("reading macromolecules")
	if model.Proteins, err = legacy.ReadMacromolecules(c.fs, cfg.InputDir, rba.ProteinsFile, legacy.KindProtein); err != nil {
		return nil, err
	}
	if model.RNAs, err = legacy.ReadMacromolecules(c.fs, cfg.InputDir, rba.RNAsFile, legacy.KindRNA); err != nil {
		return nil, err
	}
	if model.DNA, err = legacy.ReadMacromolecules(c.fs, cfg.InputDir, rba.DNAFile, legacy.KindDNA); err != nil {
		return nil, err
	}

	c.logger.Verbose("reading %s", rba.EnzymesFile)
	if model.Enzymes, err = legacy.ReadEnzymes(c.fs, cfg.InputDir); err != nil {
		return nil, err
	}
	report.Patched = rename.PatchEnzymeMachinery(&model.Enzymes)
	if report.Patched > 0 {
		c.logger.Verbose("applied %d machinery id patch(es)", report.Patched)
	}

	c.logger.Verbose("reading %s", rba.ProcessesFile)
	if model.Processes, err = legacy.ReadProcesses(c.fs, cfg.InputDir, params); err != nil {
		return nil, err
	}
	// Processes may have registered new aggregates; attach the registry to
	// the model only now.
	model.Parameters = *params

	c.logger.Verbose("reading %s", rba.MediumFile)
	if model.Medium, err = legacy.ReadMedium(c.fs, cfg.InputDir); err != nil {
		return nil, err
	}

	report.Renamed = rename.RewriteModel(model)
	c.logger.Verbose("renamed %d species reference(s)", report.Renamed)

	injectMaintenanceATP(model)
	return model, nil
}

// Maintenance-ATP process injected into every converted model. The target
// reaction is expected to exist in the metabolism section; its lower bound
// references a parameter function by name.
const (
	maintenanceProcessID   = "P_maintenance_atp"
	maintenanceProcessName = "Maintenance ATP"
	maintenanceReaction    = "Eatpm"
	maintenanceLowerBound  = "maintenanceATP"
)

func injectMaintenanceATP(model *rba.Model) {
	process := rba.Process{
		ID:   maintenanceProcessID,
		Name: maintenanceProcessName,
	}
	process.Targets.ReactionFluxes = append(process.Targets.ReactionFluxes, rba.TargetReaction{
		Reaction:   maintenanceReaction,
		LowerBound: maintenanceLowerBound,
	})
	model.Processes.Processes = append(model.Processes.Processes, process)
}
