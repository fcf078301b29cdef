package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cutwise/cutwise/internal/model"
	"github.com/cutwise/cutwise/internal/summary"
)

// unplacedReason is the fixed explanation written for every unplaced part.
const unplacedReason = "Could not fit on any available board"

// Workbook assembles the multi-sheet XLSX report and returns it as bytes.
// Every sheet is written with its header row even when it has no data rows,
// so downstream parsers always find the full sheet and column schema.
func (g *Generator) Workbook(input ReportInput) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			g.logger.Warn("closing workbook", "error", err)
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"CCCCCC"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	w := sheetWriter{f: f, headerStyle: headerStyle}

	upgrades := input.Upgrades.Normalize(g.logger)

	sheets := []struct {
		name    string
		headers []string
		width   float64
		rows    [][]interface{}
	}{
		{
			name: "Optimized Cutlist",
			headers: []string{
				"Part ID", "Board ID", "Original Length (mm)", "Original Width (mm)",
				"Actual Length (mm)", "Actual Width (mm)", "X Position (mm)", "Y Position (mm)",
				"Rotated", "Original Material", "Assigned Material", "Material Upgraded",
				"Grain Direction",
			},
			width: 16,
			rows:  cutlistRows(input.Boards),
		},
		{
			name: "Board Summary",
			headers: []string{
				"Board ID", "Material", "Length (mm)", "Width (mm)", "Area (mm²)",
				"Parts Count", "Utilization (%)", "Remaining Area (mm²)", "Available Offcuts",
			},
			width: 16,
			rows:  boardSummaryRows(input.Boards),
		},
		{
			name:    "Material Upgrades",
			headers: []string{"Original Material", "Upgraded Material", "Parts Count"},
			width:   26,
			rows:    upgradeRows(upgrades),
		},
		{
			name: "Unplaced Parts",
			headers: []string{
				"Part ID", "Length (mm)", "Width (mm)", "Material", "Grain Direction", "Reason",
			},
			width: 18,
			rows:  unplacedRows(input.UnplacedParts),
		},
		{
			name:    "Cost Analysis",
			headers: []string{"Metric", "Value"},
			width:   26,
			rows:    costAnalysisRows(input),
		},
		{
			name: "Core Material Summary",
			headers: []string{
				"Core Material", "Board Count", "Standard Area (sqft)", "Utilized Area (sqft)",
				"Wastage Area (sqft)", "Utilization %", "Wastage %", "Unit Price (₹/sqft)",
				"Total Cost (₹)",
			},
			width: 18,
			rows:  materialGroupRows(summary.CoreSummary(input.Boards, input.Cores)),
		},
		{
			name: "Laminate Summary",
			headers: []string{
				"Laminate Type", "Laminate Count", "Standard Area (sqft)", "Utilized Area (sqft)",
				"Wastage Area (sqft)", "Utilization %", "Wastage %", "Unit Price (₹/sqft)",
				"Total Cost (₹)",
			},
			width: 18,
			rows:  materialGroupRows(summary.LaminateSummary(input.Boards, input.Laminates)),
		},
		{
			name: "Available Offcuts",
			headers: []string{
				"Offcut ID", "Source Board", "X (mm)", "Y (mm)", "Length (mm)", "Width (mm)",
				"Area (mm²)", "Material",
			},
			width: 16,
			rows:  offcutRows(input.Boards),
		},
	}

	for _, s := range sheets {
		if err := w.writeSheet(s.name, s.headers, s.rows, s.width); err != nil {
			return nil, err
		}
		g.logger.Debug("wrote workbook sheet", "sheet", s.name, "rows", len(s.rows))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter writes uniformly styled sheets into one workbook. The first
// sheet renames excelize's default "Sheet1" so the workbook contains exactly
// the report sheets.
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	sheetCount  int
}

func (w *sheetWriter) writeSheet(name string, headers []string, rows [][]interface{}, colWidth float64) error {
	if w.sheetCount == 0 {
		if err := w.f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("naming sheet %q: %w", name, err)
		}
	} else {
		if _, err := w.f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", name, err)
		}
	}
	w.sheetCount++

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := w.f.SetSheetRow(name, "A1", &headerRow); err != nil {
		return fmt.Errorf("writing header of sheet %q: %w", name, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("resolving last column of sheet %q: %w", name, err)
	}
	if err := w.f.SetCellStyle(name, "A1", lastCol+"1", w.headerStyle); err != nil {
		return fmt.Errorf("styling header of sheet %q: %w", name, err)
	}
	if err := w.f.SetColWidth(name, "A", lastCol, colWidth); err != nil {
		return fmt.Errorf("sizing columns of sheet %q: %w", name, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("resolving row %d of sheet %q: %w", i+2, name, err)
		}
		if err := w.f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("writing row %d of sheet %q: %w", i+2, name, err)
		}
	}
	return nil
}

func cutlistRows(boards []*model.Board) [][]interface{} {
	var rows [][]interface{}
	for _, b := range boards {
		for _, p := range b.Parts {
			boardID := p.AssignedBoardID
			if boardID == "" {
				boardID = b.ID
			}
			rows = append(rows, []interface{}{
				p.ID,
				boardID,
				p.RequestedLength,
				p.RequestedWidth,
				p.PlacedLength(),
				p.PlacedWidth(),
				p.X,
				p.Y,
				yesNo(p.Rotated),
				p.Material.String(),
				p.EffectiveMaterial().String(),
				yesNo(p.Upgraded),
				p.Grain.String(),
			})
		}
	}
	return rows
}

func boardSummaryRows(boards []*model.Board) [][]interface{} {
	var rows [][]interface{}
	for _, b := range boards {
		rows = append(rows, []interface{}{
			b.ID,
			b.Material.String(),
			b.TotalLength,
			b.TotalWidth,
			round2(b.TotalArea()),
			len(b.Parts),
			formatPercent(b.Utilization()),
			round2(b.RemainingArea()),
			len(b.Offcuts),
		})
	}
	return rows
}

func upgradeRows(upgrades []summary.UpgradeRow) [][]interface{} {
	var rows [][]interface{}
	for _, u := range upgrades {
		rows = append(rows, []interface{}{u.Original, u.Upgraded, u.Count})
	}
	return rows
}

func unplacedRows(parts []model.Part) [][]interface{} {
	var rows [][]interface{}
	for _, p := range parts {
		rows = append(rows, []interface{}{
			p.ID,
			p.RequestedLength,
			p.RequestedWidth,
			p.Material.String(),
			p.Grain.String(),
			unplacedReason,
		})
	}
	return rows
}

func costAnalysisRows(input ReportInput) [][]interface{} {
	placed := 0
	upgraded := 0
	totalUtilization := 0.0
	for _, b := range input.Boards {
		placed += len(b.Parts)
		totalUtilization += b.Utilization()
		for _, p := range b.Parts {
			if p.Upgraded {
				upgraded++
			}
		}
	}

	savings := input.InitialCost - input.FinalCost
	savingsPct := 0.0
	if input.InitialCost > 0 {
		savingsPct = savings / input.InitialCost * 100
	}
	avgUtilization := 0.0
	if len(input.Boards) > 0 {
		avgUtilization = totalUtilization / float64(len(input.Boards))
	}

	return [][]interface{}{
		{"Initial Cost (Worst Case)", formatCurrency(input.InitialCost)},
		{"Optimized Cost", formatCurrency(input.FinalCost)},
		{"Cost Savings", formatCurrency(savings)},
		{"Savings Percentage", formatPercent(savingsPct)},
		{"Total Parts", placed + len(input.UnplacedParts)},
		{"Parts Placed", placed},
		{"Parts Unplaced", len(input.UnplacedParts)},
		{"Boards Used", len(input.Boards)},
		{"Parts Upgraded", upgraded},
		{"Average Board Utilization", formatPercent(avgUtilization)},
	}
}

func materialGroupRows(groups []summary.MaterialGroup) [][]interface{} {
	var rows [][]interface{}
	for _, gr := range groups {
		rows = append(rows, []interface{}{
			gr.Key,
			gr.BoardCount,
			round2(gr.StandardArea),
			round2(gr.UtilizedArea),
			round2(gr.WastageArea()),
			formatPercent(gr.UtilizationPercent()),
			formatPercent(gr.WastagePercent()),
			formatCurrency(gr.UnitPrice),
			formatCurrency(gr.TotalCost),
		})
	}
	return rows
}

func offcutRows(boards []*model.Board) [][]interface{} {
	var all []model.Offcut
	for _, b := range boards {
		all = append(all, b.Offcuts...)
	}

	var rows [][]interface{}
	for _, o := range model.UsableOffcuts(all) {
		rows = append(rows, []interface{}{
			o.ID,
			o.SourceBoardID,
			o.X,
			o.Y,
			o.Length,
			o.Width,
			round2(o.Area()),
			o.Material.String(),
		})
	}
	return rows
}
