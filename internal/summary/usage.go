package summary

import (
	"sort"

	"github.com/cutwise/cutwise/internal/model"
)

// UsageRow is one row of the standalone material usage table: all boards
// sharing a (laminate, core, thickness) triple, a finer partition than the
// core summary. Areas are in square meters.
type UsageRow struct {
	Laminate   string
	Core       string
	Thickness  float64 // mm
	BoardsUsed int
	TotalArea  float64 // sqm, full board area
	Utilized   float64 // sqm, board area minus the board's remaining area
	TotalCost  float64
}

// UtilizationPercent returns utilized/total as a percentage, 0 for
// zero-area rows.
func (r UsageRow) UtilizationPercent() float64 {
	if r.TotalArea == 0 {
		return 0
	}
	return (r.Utilized / r.TotalArea) * 100
}

type usageKey struct {
	laminate  string
	core      string
	thickness float64
}

// MaterialUsage groups boards by (laminate, core, thickness) and derives a
// per-group cost and utilization table, sorted by total cost descending.
//
// Utilized area here is the board's total area minus its kerf-expanded
// remaining area, not the placed-part footprint sum that CoreSummary uses.
// The two figures diverge by the kerf allowance; both views are reported
// deliberately and must not be reconciled into one.
func MaterialUsage(boards []*model.Board, cores model.CorePrices, laminates model.LaminatePrices) []UsageRow {
	groups := make(map[usageKey]*UsageRow)
	var order []usageKey

	for _, b := range boards {
		key := usageKey{
			laminate:  b.Material.LaminateName(),
			core:      b.Material.CoreName,
			thickness: b.Material.Thickness,
		}
		row, ok := groups[key]
		if !ok {
			row = &UsageRow{Laminate: key.laminate, Core: key.core, Thickness: key.thickness}
			groups[key] = row
			order = append(order, key)
		}

		totalSqm := model.SquareMMToSquareM(b.TotalArea())
		utilizedSqm := model.SquareMMToSquareM(b.TotalArea() - b.RemainingArea())

		row.BoardsUsed++
		row.TotalArea += totalSqm
		row.Utilized += utilizedSqm
		row.TotalCost += b.Material.CostPerSqm(cores, laminates) * totalSqm
	}

	rows := make([]UsageRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *groups[key])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCost > rows[j].TotalCost
	})
	return rows
}
