package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rbatools/rbaconv/internal/config"
	"github.com/rbatools/rbaconv/internal/convert"
	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/internal/logging"
	"github.com/rbatools/rbaconv/internal/tui"
	"github.com/rbatools/rbaconv/internal/ui"
	"github.com/rbatools/rbaconv/pkg/rba"
)

var convertCmd = &cobra.Command{
	Use:   "convert [project_path]",
	Short: "Convert a legacy model directory",
	Long: `Convert reads the legacy model files from the input directory and writes
the converted model to the output directory.

Arguments:
  project_path    Project directory (default: current directory).
                  rbaconv.yaml is looked up here, and relative input/output
                  directories are resolved against it.

Configuration precedence (highest wins):
  1. Flags (--input, --output, --strict)
  2. Environment ($RBACONV_INPUT_DIR, $RBACONV_OUTPUT_DIR, $RBACONV_STRICT)
  3. rbaconv.yaml in the project directory
  4. Defaults (input: old_data, output: current directory)

A .env file in the working directory is loaded into the environment first;
--env-file adds further files.

Examples:
  # Convert ./old_data into the current directory
  rbaconv convert

  # Convert a specific model, strict reference checking
  rbaconv convert ./models/subtilis -i legacy -o current --strict

  # Non-interactive overwrite for pipelines
  rbaconv convert -o converted --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

type convertFlagValues struct {
	input, output string
	strict, force bool
	envFiles      []string
	overrides     []string
}

var convertFlags convertFlagValues

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertFlags.input, "input", "i", "",
		"Directory holding the legacy model files\n"+
			"Precedence: --input > $RBACONV_INPUT_DIR > rbaconv.yaml > old_data")
	convertCmd.Flags().StringVarP(&convertFlags.output, "output", "o", "",
		"Directory receiving the converted model files\n"+
			"Precedence: --output > $RBACONV_OUTPUT_DIR > rbaconv.yaml > current directory")
	convertCmd.Flags().BoolVar(&convertFlags.strict, "strict", false,
		"Treat unresolved species references as a fatal error\n"+
			"Without it they are reported as warnings and output is still written")
	convertCmd.Flags().BoolVar(&convertFlags.force, "force", false,
		"Skip the interactive approval prompt when overwriting output files\n"+
			"Use for CI/CD pipelines")
	convertCmd.Flags().StringSliceVar(&convertFlags.overrides, "set", nil,
		"Override a config value as key=value (can be specified multiple times)\n"+
			"Keys: input_dir, output_dir, strict\n"+
			"Example: --set strict=1 --set output_dir=converted")
	convertCmd.Flags().StringSliceVar(&convertFlags.envFiles, "env-file", nil,
		"Load environment variables from .env files (can be specified multiple times)\n"+
			"Later files do not override variables already set")
}

// buildConvertConfig resolves the conversion config from flags, environment
// and rbaconv.yaml. Extracted for testability.
func buildConvertConfig(cmd *cobra.Command, projectDir string, verbose bool) (convert.Config, error) {
	_ = godotenv.Load()
	if len(convertFlags.envFiles) > 0 {
		if err := godotenv.Load(convertFlags.envFiles...); err != nil {
			return convert.Config{}, fmt.Errorf("failed to load env file: %v: %w", err, rba.ErrInvalidConfig)
		}
	}

	projectCfg, err := config.Load(projectDir)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return convert.Config{}, fmt.Errorf("failed to load %s: %v: %w",
				config.ConfigFileName, err, rba.ErrInvalidConfig)
		}
		projectCfg = &config.ProjectConfig{}
	} else if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Loaded %s from %s\n", config.ConfigFileName, projectDir)
	}

	config.ApplyEnv(projectCfg)

	if convertFlags.input != "" {
		projectCfg.InputDir = convertFlags.input
	}
	if convertFlags.output != "" {
		projectCfg.OutputDir = convertFlags.output
	}
	if cmd.Flags().Changed("strict") {
		projectCfg.Strict = convertFlags.strict
	}
	if err := config.ApplyOverrides(projectCfg, convertFlags.overrides); err != nil {
		return convert.Config{}, fmt.Errorf("%v: %w", err, rba.ErrInvalidConfig)
	}

	if projectCfg.InputDir == "" {
		projectCfg.InputDir = rba.DefaultInputDir
	}
	if projectCfg.OutputDir == "" {
		projectCfg.OutputDir = rba.DefaultOutputDir
	}

	cfg := convert.Config{
		InputDir:  resolveDir(projectDir, projectCfg.InputDir),
		OutputDir: resolveDir(projectDir, projectCfg.OutputDir),
		Strict:    projectCfg.Strict,
		Verbose:   verbose,
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Input directory: %s\n", cfg.InputDir)
		fmt.Fprintf(os.Stderr, "[VERBOSE] Output directory: %s\n", cfg.OutputDir)
		fmt.Fprintf(os.Stderr, "[VERBOSE] Strict mode: %v\n", cfg.Strict)
	}

	return cfg, nil
}

// resolveDir anchors relative directories at the project directory.
func resolveDir(projectDir, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(projectDir, dir)
}

func runConvert(cmd *cobra.Command, args []string) error {
	projectDir := "."
	if len(args) == 1 {
		projectDir = args[0]
	}
	verbose := getVerboseFlag(cmd)

	cfg, err := buildConvertConfig(cmd, projectDir, verbose)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling conversion...")
		cancel()
	}()

	if err := approveOverwrite(ctx, cfg.OutputDir, verbose); err != nil {
		return err
	}

	converter := convert.New(filesystem.NewOSFileSystem(), logging.NewConsoleLogger(verbose))
	report, err := converter.Run(cfg)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Fprint(os.Stderr, ui.RenderSummary(ui.Summary{
		RunID:      report.RunID.String(),
		OutputDir:  cfg.OutputDir,
		Duration:   report.Duration,
		Species:    report.Species,
		Reactions:  report.Reactions,
		Enzymes:    report.Enzymes,
		Processes:  report.Processes,
		Aggregates: report.Aggregates,
		Renamed:    report.Renamed,
		Warnings:   report.Warnings,
	}))

	return nil
}

// approveOverwrite asks before writing into a non-empty output directory.
// --force replaces the prompt with a countdown; non-interactive sessions
// without --force are refused so pipelines fail loudly instead of hanging.
func approveOverwrite(ctx context.Context, outputDir string, verbose bool) error {
	if !outputDirHasModel(outputDir) {
		return nil
	}

	var approver rba.Approver
	switch {
	case convertFlags.force:
		approver = ui.NewForcedApprover(verbose)
	case tui.IsInteractive():
		approver = ui.NewInteractiveApprover(verbose)
	default:
		return fmt.Errorf("output directory %s contains model files and no terminal is available for confirmation (use --force): %w",
			outputDir, rba.ErrApprovalDenied)
	}

	approved, err := approver.RequestApproval(ctx, outputDir)
	if err != nil {
		return fmt.Errorf("approval failed: %v: %w", err, rba.ErrApprovalDenied)
	}
	if !approved {
		return fmt.Errorf("overwrite of %s not approved: %w", outputDir, rba.ErrApprovalDenied)
	}
	return nil
}

// outputDirHasModel reports whether the output directory already contains
// any of the model files the converter would write.
func outputDirHasModel(outputDir string) bool {
	for _, name := range []string{
		rba.MetabolismFile, rba.ParametersFile, rba.ProteinsFile, rba.RNAsFile,
		rba.DNAFile, rba.EnzymesFile, rba.ProcessesFile, rba.MediumFile,
	} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err == nil {
			return true
		}
	}
	return false
}
