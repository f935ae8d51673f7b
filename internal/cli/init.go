package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rbatools/rbaconv/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <target_path>",
	Short: "Initialize a new conversion project",
	Long: `Initialize a conversion project into the specified directory.

The init command creates:
- rbaconv.yaml with the default configuration
- .env.example documenting the environment overrides
- old_data/ directory for the legacy model files

Target directory must be empty or non-existent.

Examples:
  rbaconv init .                 # Initialize in current directory
  rbaconv init ./mymodel         # Initialize in ./mymodel`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	projectName := filepath.Base(targetPath)
	if projectName == "." || projectName == ".." {
		cwd, err := os.Getwd()
		if err == nil {
			projectName = filepath.Base(cwd)
		} else {
			projectName = "project"
		}
	}

	scaffolder := scaffold.NewScaffolder(getVerboseFlag(cmd))
	created, err := scaffolder.CreateProject(projectName, targetPath)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Project initialized in '%s':\n", targetPath)
	for _, f := range created {
		fmt.Fprintf(os.Stderr, "  %s\n", f)
	}

	fmt.Fprintln(os.Stderr, "\nNext steps:")
	if targetPath != "." {
		fmt.Fprintf(os.Stderr, "  cd %s\n", targetPath)
	}
	fmt.Fprintln(os.Stderr, "  # copy the legacy model into old_data/, then:")
	fmt.Fprintln(os.Stderr, "  rbaconv convert")

	return nil
}
