package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rbaconv",
	Short: "Legacy RBA model converter",
	Long: `rbaconv reads a resource balance analysis model written in the legacy
XML dialect and rewrites it in the current format: value nodes collapse
into named parameters or aggregates, process targets are classified by
kind, and metabolite identifiers are normalized to compartment-suffixed
names.

The input directory must contain the fixed file set (metabolism.xml,
parameters.xml, proteins.xml, rnas.xml, dna.xml, enzymes.xml,
processes.xml, medium.tsv). Output uses the same file names.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  12 - User denied overwrite approval
  20 - Structurally invalid input model
  21 - Required input file missing
  22 - Unresolved species references (strict mode)
  23 - Output serialization failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for rbaconv")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
