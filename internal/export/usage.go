package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/cutwise/cutwise/internal/summary"
)

// UsageCSV serializes the standalone material usage table to CSV. The header
// row is always present, even for an empty board list.
func (g *Generator) UsageCSV(input ReportInput) ([]byte, error) {
	rows := summary.MaterialUsage(input.Boards, input.Cores, input.Laminates)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Laminate", "Core", "Thickness", "Boards Used",
		"Total Area (sqm)", "Utilized Area (sqm)", "Utilization (%)", "Total Cost (₹)",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing usage header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Laminate,
			r.Core,
			strconv.FormatFloat(r.Thickness, 'f', -1, 64),
			strconv.Itoa(r.BoardsUsed),
			fmt.Sprintf("%.2f", r.TotalArea),
			fmt.Sprintf("%.2f", r.Utilized),
			fmt.Sprintf("%.1f", r.UtilizationPercent()),
			fmt.Sprintf("%.2f", r.TotalCost),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing usage row for %s: %w", r.Core, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing usage table: %w", err)
	}
	g.logger.Debug("wrote material usage table", "rows", len(rows))
	return buf.Bytes(), nil
}
