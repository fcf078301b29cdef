// Package summary computes cost and utilization aggregations over a placed
// board list. All functions are pure: they read the board graph and price
// tables and return rows, never mutating their inputs.
package summary

import (
	"github.com/cutwise/cutwise/internal/model"
)

// MaterialGroup is one row of a core or laminate summary: all boards sharing
// a grouping key, with running area and cost totals in square feet.
type MaterialGroup struct {
	Key          string  // core name, or "<laminate> (Top|Bottom)"
	BoardCount   int     // boards (core) or laminate sheets (laminate) consumed
	StandardArea float64 // sqft, full purchased board area
	UtilizedArea float64 // sqft, summed placed-part footprint
	UnitPrice    float64 // per sqft, resolved once when the group is created
	TotalCost    float64 // StandardArea x UnitPrice, accumulated per board
}

// WastageArea returns the unused area in sqft. Zero-area groups report 0.
func (g MaterialGroup) WastageArea() float64 {
	if g.StandardArea == 0 {
		return 0
	}
	return g.StandardArea - g.UtilizedArea
}

// UtilizationPercent returns utilized/standard as a percentage, 0 for
// zero-area groups.
func (g MaterialGroup) UtilizationPercent() float64 {
	if g.StandardArea == 0 {
		return 0
	}
	return (g.UtilizedArea / g.StandardArea) * 100
}

// WastagePercent returns wastage/standard as a percentage, 0 for zero-area
// groups. UtilizationPercent and WastagePercent always total 100 for groups
// with area.
func (g MaterialGroup) WastagePercent() float64 {
	if g.StandardArea == 0 {
		return 0
	}
	return (g.WastageArea() / g.StandardArea) * 100
}

// grouping accumulates MaterialGroups in first-seen key order.
type grouping struct {
	groups map[string]*MaterialGroup
	order  []string
}

func newGrouping() *grouping {
	return &grouping{groups: make(map[string]*MaterialGroup)}
}

// group returns the group for key, creating it with the given unit price on
// first sight. The price is cached on the group; later boards reuse it.
func (gr *grouping) group(key string, unitPrice float64) *MaterialGroup {
	if g, ok := gr.groups[key]; ok {
		return g
	}
	g := &MaterialGroup{Key: key, UnitPrice: unitPrice}
	gr.groups[key] = g
	gr.order = append(gr.order, key)
	return g
}

func (gr *grouping) rows() []MaterialGroup {
	rows := make([]MaterialGroup, 0, len(gr.order))
	for _, key := range gr.order {
		rows = append(rows, *gr.groups[key])
	}
	return rows
}

// boardAreas returns a board's full and utilized areas in sqft. Utilized
// area is the plain sum of placed-part footprints, kerf excluded.
func boardAreas(b *model.Board) (standard, utilized float64) {
	standard = model.SquareMMToSquareFeet(b.TotalArea())
	for _, p := range b.Parts {
		utilized += model.SquareMMToSquareFeet(p.Area())
	}
	return standard, utilized
}

// CoreSummary groups boards by core material name, ignoring the laminate
// finish: two boards with the same core but different laminates land in one
// row. Cost accumulates at the full board area because a whole sheet must be
// purchased no matter how much of it is waste. Rows keep first-seen order.
func CoreSummary(boards []*model.Board, cores model.CorePrices) []MaterialGroup {
	gr := newGrouping()
	for _, b := range boards {
		standard, utilized := boardAreas(b)
		coreName := b.Material.CoreName

		g := gr.group(coreName, cores[coreName].PricePerSqm/model.SquareFeetPerSquareMeter)
		g.BoardCount++
		g.StandardArea += standard
		g.UtilizedArea += utilized
		g.TotalCost += standard * g.UnitPrice
	}
	return gr.rows()
}

// LaminateSummary groups each board's two laminate faces independently,
// keyed by "<laminate> (Top)" and "<laminate> (Bottom)" so the same finish
// on opposite faces stays distinguishable. Every board contributes one
// laminate sheet to each of its two rows.
//
// Both faces are charged the board's full placed-part footprint. This
// double-counts utilization relative to a per-face view, matching how
// laminate is purchased: each face consumes its own full sheet.
func LaminateSummary(boards []*model.Board, laminates model.LaminatePrices) []MaterialGroup {
	gr := newGrouping()
	for _, b := range boards {
		standard, utilized := boardAreas(b)

		faces := []struct {
			name     string
			position string
		}{
			{b.Material.TopLaminateName, "Top"},
			{b.Material.BottomLaminateName, "Bottom"},
		}
		for _, face := range faces {
			key := face.name + " (" + face.position + ")"
			// Price is keyed by laminate name alone; position never
			// changes what a laminate costs.
			g := gr.group(key, laminates[face.name]/model.SquareFeetPerSquareMeter)
			g.BoardCount++
			g.StandardArea += standard
			g.UtilizedArea += utilized
			g.TotalCost += standard * g.UnitPrice
		}
	}
	return gr.rows()
}
