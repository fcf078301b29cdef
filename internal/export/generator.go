// Package export renders a finalized cutting solution into its deliverable
// artifacts: per-board layout diagrams (PDF, DXF, markdown), the multi-sheet
// tabulated report (XLSX), the standalone material usage table (CSV), and
// QR-coded part labels. All renderers read the board graph without mutating
// it and build each artifact fully in memory before returning it.
package export

import (
	"log/slog"

	"github.com/cutwise/cutwise/internal/model"
	"github.com/cutwise/cutwise/internal/summary"
)

// ReportInput carries everything the renderers need for one order: the
// placed board graph, the parts that could not be placed, the upgrade
// summary in whichever shape the optimizer produced, the cost pair, and the
// price tables for the aggregations.
type ReportInput struct {
	OrderName     string
	Boards        []*model.Board
	UnplacedParts []model.Part
	Upgrades      summary.UpgradeSummary
	InitialCost   float64
	FinalCost     float64
	Cores         model.CorePrices
	Laminates     model.LaminatePrices
}

// Generator renders report artifacts. Construct with New.
type Generator struct {
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for render diagnostics and skip warnings.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}
