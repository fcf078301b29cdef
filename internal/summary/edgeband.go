package summary

import (
	"sort"

	"github.com/cutwise/cutwise/internal/model"
)

// EdgeBandRow totals edge banding demand for one band type. Band type
// follows the panel's visible face, so parts group by the top laminate of
// their ordered material.
type EdgeBandRow struct {
	Name       string
	PanelCount int
	TotalMM    float64
}

// TotalM returns the banding length in meters.
func (r EdgeBandRow) TotalM() float64 {
	return r.TotalMM / 1000.0
}

// EdgeBanding sums the banding each laminate finish needs across all placed
// parts. Every part contributes its full requested perimeter, 2 x (length +
// width). Rows are sorted by band name.
func EdgeBanding(boards []*model.Board) []EdgeBandRow {
	groups := make(map[string]*EdgeBandRow)
	for _, b := range boards {
		for _, p := range b.Parts {
			name := p.Material.TopLaminateName
			row, ok := groups[name]
			if !ok {
				row = &EdgeBandRow{Name: name}
				groups[name] = row
			}
			row.PanelCount++
			row.TotalMM += 2 * (p.RequestedLength + p.RequestedWidth)
		}
	}

	rows := make([]EdgeBandRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})
	return rows
}
