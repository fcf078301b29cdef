package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cutwise/cutwise/internal/config"
	"github.com/cutwise/cutwise/internal/export"
	"github.com/cutwise/cutwise/internal/solution"
	"github.com/cutwise/cutwise/internal/summary"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <solution.json>",
		Short: "Generate cutting-layout reports from a solution file",
		Long: `Generate renders a finalized cutting solution into report artifacts.

It always produces three files, named after the solution file:
- <name>_layout.pdf          per-board cutting diagrams
- <name>_report.xlsx         eight-sheet tabulated report
- <name>_material_usage.csv  per laminate/core/thickness usage table

Material prices come from a pricebook (YAML). Without one, areas and
utilization are still reported but all costs are zero.

Examples:
  # Generate reports next to the solution file
  cutwise generate kitchen.json

  # Write everything into a reports directory
  cutwise generate kitchen.json -o reports/

  # Use a specific pricebook
  cutwise generate kitchen.json -p prices/q3.yaml

  # Also produce QR part labels and per-board DXF files
  cutwise generate kitchen.json --labels --dxf`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("output", "o", ".",
		"Output directory for generated artifacts (created if needed)")
	cmd.Flags().StringP("pricebook", "p", "",
		"Pricebook file path (default: pricebook.yaml in current or XDG config directory)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Also write a markdown layout report")
	cmd.Flags().BoolP("labels", "l", false,
		"Also write a QR part-label PDF (Avery 5160 layout)")
	cmd.Flags().BoolP("dxf", "d", false,
		"Also write per-board DXF files")

	return cmd
}

// generateOptions holds the resolved generate command inputs.
type generateOptions struct {
	solutionPath  string
	pricebookPath string
	outputDir     string
	withMarkdown  bool
	withLabels    bool
	withDXF       bool
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	opts, err := buildGenerateOptions(cmd, args)
	if err != nil {
		return err
	}

	// Set up structured logging
	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	sol, err := solution.Load(opts.solutionPath)
	if err != nil {
		return fmt.Errorf("loading solution %s: %w", opts.solutionPath, err)
	}
	logger.Info("solution loaded",
		"path", opts.solutionPath,
		"boards", len(sol.Boards),
		"unplaced", len(sol.UnplacedParts),
	)

	pb, err := loadPricebook(opts.pricebookPath, logger)
	if err != nil {
		return err
	}
	cores, laminates := pb.Tables()

	input := export.ReportInput{
		OrderName:     sol.OrderName,
		Boards:        sol.Boards,
		UnplacedParts: sol.UnplacedParts,
		Upgrades:      summary.UpgradesFromTriples(sol.Upgrades),
		InitialCost:   sol.InitialCost,
		FinalCost:     sol.FinalCost,
		Cores:         cores,
		Laminates:     laminates,
	}

	if err := os.MkdirAll(opts.outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	gen := export.New(export.WithLogger(logger))
	base := solutionBaseName(opts.solutionPath)
	out := cmd.OutOrStdout()

	pdf, err := gen.LayoutPDF(input)
	if err != nil {
		return fmt.Errorf("generating layout pdf: %w", err)
	}
	if err := writeArtifact(out, filepath.Join(opts.outputDir, base+"_layout.pdf"), pdf); err != nil {
		return err
	}

	workbook, err := gen.Workbook(input)
	if err != nil {
		return fmt.Errorf("generating report workbook: %w", err)
	}
	if err := writeArtifact(out, filepath.Join(opts.outputDir, base+"_report.xlsx"), workbook); err != nil {
		return err
	}

	usage, err := gen.UsageCSV(input)
	if err != nil {
		return fmt.Errorf("generating material usage csv: %w", err)
	}
	if err := writeArtifact(out, filepath.Join(opts.outputDir, base+"_material_usage.csv"), usage); err != nil {
		return err
	}

	if opts.withMarkdown {
		md, err := gen.LayoutMarkdown(input)
		if err != nil {
			return fmt.Errorf("generating markdown report: %w", err)
		}
		if err := writeArtifact(out, filepath.Join(opts.outputDir, base+"_layout.md"), md); err != nil {
			return err
		}
	}

	if opts.withLabels {
		labels, err := gen.PartLabels(input)
		if err != nil {
			return fmt.Errorf("generating part labels: %w", err)
		}
		if err := writeArtifact(out, filepath.Join(opts.outputDir, base+"_labels.pdf"), labels); err != nil {
			return err
		}
	}

	if opts.withDXF {
		dxfDir := filepath.Join(opts.outputDir, base+"_dxf")
		paths, err := gen.SaveLayoutDXF(input, dxfDir)
		if err != nil {
			return fmt.Errorf("generating dxf files: %w", err)
		}
		fmt.Fprintf(out, "Wrote %d DXF files to %s\n", len(paths), dxfDir)
	}

	return nil
}

// buildGenerateOptions resolves generate command flags and arguments.
func buildGenerateOptions(cmd *cobra.Command, args []string) (*generateOptions, error) {
	opts := &generateOptions{solutionPath: args[0]}

	var err error
	opts.outputDir, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	opts.pricebookPath, err = cmd.Flags().GetString("pricebook")
	if err != nil {
		return nil, err
	}

	opts.withMarkdown, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	opts.withLabels, err = cmd.Flags().GetBool("labels")
	if err != nil {
		return nil, err
	}

	opts.withDXF, err = cmd.Flags().GetBool("dxf")
	if err != nil {
		return nil, err
	}

	return opts, nil
}

// loadPricebook resolves and loads the pricebook.
// If the user explicitly specified a path, a missing file is an error.
// If no path was specified and no pricebook is found, generation proceeds
// with empty price tables and zero costs.
func loadPricebook(explicit string, logger *slog.Logger) (*config.Pricebook, error) {
	path := config.FindPricebook(explicit)
	if path == "" {
		if explicit != "" {
			return nil, fmt.Errorf("pricebook not found: %s", explicit)
		}
		logger.Warn("no pricebook found, costs will be reported as zero",
			"searched", config.DefaultPricebookPath())
		return &config.Pricebook{
			Cores:     make(map[string]config.CoreEntry),
			Laminates: make(map[string]float64),
		}, nil
	}

	pb, err := config.LoadPricebook(path, logger)
	if err != nil {
		return nil, fmt.Errorf("loading pricebook %s: %w", path, err)
	}
	logger.Info("pricebook loaded", "path", path,
		"cores", len(pb.Cores), "laminates", len(pb.Laminates))
	return pb, nil
}

// solutionBaseName derives the artifact name prefix from the solution path.
func solutionBaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// writeArtifact persists one generated artifact and reports it to the user.
func writeArtifact(out io.Writer, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
