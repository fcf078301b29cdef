package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cutwise/cutwise/internal/config"
	"github.com/cutwise/cutwise/internal/solution"
)

// sampleSolutionFile is the file name of the generated demo solution.
const sampleSolutionFile = "sample_solution.json"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter pricebook and sample solution",
		Long: `Init creates two starter files in the target directory:

- pricebook.yaml         core and laminate price tables to edit
- sample_solution.json   a small demo solution for trying the generator

Examples:
  # Create starter files in the current directory
  cutwise init

  # Create them in a specific directory
  cutwise init -o demo/

  # Overwrite existing files
  cutwise init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", ".",
		"Directory to create the starter files in")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing files")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	dir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	pricebookPath := filepath.Join(dir, config.DefaultPricebookFile)
	solutionPath := filepath.Join(dir, sampleSolutionFile)

	if !force {
		for _, path := range []string{pricebookPath, solutionPath} {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("file already exists: %s (use -f to overwrite)", path)
			}
		}
	}

	if err := config.SavePricebook(pricebookPath, config.StarterPricebook()); err != nil {
		return fmt.Errorf("creating pricebook: %w", err)
	}

	if err := solution.Save(solutionPath, solution.Sample()); err != nil {
		return fmt.Errorf("creating sample solution: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", pricebookPath)
	fmt.Fprintf(out, "Created %s\n", solutionPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Edit the pricebook to match your material prices, then try:")
	fmt.Fprintf(out, "  cutwise generate %s\n", solutionPath)

	return nil
}
