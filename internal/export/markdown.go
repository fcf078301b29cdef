package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/cutwise/cutwise/internal/model"
	"github.com/cutwise/cutwise/internal/summary"
)

// LayoutMarkdown renders the cutting layout as a markdown document: batch
// summary, one section per board with its part table, edge banding totals,
// and any unplaced parts. A text-form companion to the PDF diagram that can
// be read in a terminal or pasted into a ticket.
func (g *Generator) LayoutMarkdown(input ReportInput) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	title := "Cutting Layout Report"
	if input.OrderName != "" {
		title = fmt.Sprintf("Cutting Layout Report - %s", input.OrderName)
	}
	md.H1(title)
	md.PlainText("")

	writeBatchSummary(md, input)

	for i, b := range input.Boards {
		writeBoardSection(md, i+1, b)
	}

	writeEdgeBanding(md, input.Boards)
	writeUnplaced(md, input.UnplacedParts)

	if err := md.Build(); err != nil {
		return nil, fmt.Errorf("rendering markdown report: %w", err)
	}
	g.logger.Debug("rendered markdown report", "boards", len(input.Boards))
	return buf.Bytes(), nil
}

func writeBatchSummary(md *markdown.Markdown, input ReportInput) {
	placed := 0
	totalUtilization := 0.0
	for _, b := range input.Boards {
		placed += len(b.Parts)
		totalUtilization += b.Utilization()
	}
	avgUtilization := 0.0
	if len(input.Boards) > 0 {
		avgUtilization = totalUtilization / float64(len(input.Boards))
	}

	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Boards Used", strconv.Itoa(len(input.Boards))},
			{"Parts Placed", strconv.Itoa(placed)},
			{"Parts Unplaced", strconv.Itoa(len(input.UnplacedParts))},
			{"Average Utilization", formatPercent(avgUtilization)},
			{"Initial Cost (Worst Case)", formatCurrency(input.InitialCost)},
			{"Optimized Cost", formatCurrency(input.FinalCost)},
			{"Cost Savings", formatCurrency(input.InitialCost - input.FinalCost)},
		},
	})
	md.PlainText("")
}

func writeBoardSection(md *markdown.Markdown, num int, b *model.Board) {
	md.H2(fmt.Sprintf("Board %d: %s", num, b.ID))
	md.PlainText("")
	md.PlainTextf("Material: %s  ", b.Material.FullMaterialString)
	md.PlainTextf("Size: %.0f x %.0f mm  ", b.TotalLength, b.TotalWidth)
	md.PlainTextf("Utilization: %s", formatPercent(b.Utilization()))
	md.PlainText("")

	if len(b.Parts) == 0 {
		md.PlainText("No parts placed on this board.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(b.Parts))
	for i, p := range b.Parts {
		rows[i] = []string{
			p.ID,
			fmt.Sprintf("%.0f x %.0f", p.PlacedLength(), p.PlacedWidth()),
			fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y),
			yesNo(p.Rotated),
			yesNo(p.Upgraded),
			p.EffectiveMaterial().String(),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Part ID", "Size (mm)", "Position", "Rotated", "Upgraded", "Material"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeEdgeBanding(md *markdown.Markdown, boards []*model.Board) {
	bands := summary.EdgeBanding(boards)
	if len(bands) == 0 {
		return
	}

	md.H2("Edge Banding")
	md.PlainText("")
	rows := make([][]string, len(bands))
	for i, band := range bands {
		rows[i] = []string{
			band.Name,
			strconv.Itoa(band.PanelCount),
			fmt.Sprintf("%.0f", band.TotalMM),
			fmt.Sprintf("%.2f", band.TotalM()),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Edge Band Name", "Panel Count", "Total Length (mm)", "Total Length (m)"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeUnplaced(md *markdown.Markdown, parts []model.Part) {
	if len(parts) == 0 {
		return
	}

	md.H2("Unplaced Parts")
	md.PlainText("")
	rows := make([][]string, len(parts))
	for i, p := range parts {
		rows[i] = []string{
			p.ID,
			fmt.Sprintf("%.0f x %.0f", p.RequestedLength, p.RequestedWidth),
			p.Material.String(),
			p.Grain.String(),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Part ID", "Size (mm)", "Material", "Grain"},
		Rows:   rows,
	})
	md.PlainText("")
}
