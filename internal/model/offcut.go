package model

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Offcut represents a usable rectangular remnant left on a board after
// cutting, potentially reusable in a later order.
type Offcut struct {
	ID            string          `json:"id"`
	SourceBoardID string          `json:"source_board_id"`
	X             float64         `json:"x"`      // mm from board left edge
	Y             float64         `json:"y"`      // mm from board top edge
	Length        float64         `json:"length"` // mm
	Width         float64         `json:"width"`  // mm
	Material      MaterialDetails `json:"material"`
}

// Area returns the area of the offcut in square mm.
func (o Offcut) Area() float64 {
	return o.Length * o.Width
}

// MinOffcutDimension is the minimum length or width (in mm) for a remnant
// to be considered a usable offcut. Remnants smaller than this are waste.
const MinOffcutDimension = 50.0

// MinOffcutArea is the noise threshold (in sq mm) for offcut reporting.
// Remnants at or below this area are excluded from reports.
const MinOffcutArea = 10000.0 // 100mm x 100mm equivalent

// UsableOffcuts filters out offcuts at or below the noise threshold and
// returns the rest sorted by area descending, largest leftovers first.
func UsableOffcuts(offcuts []Offcut) []Offcut {
	var usable []Offcut
	for _, o := range offcuts {
		if o.Area() > MinOffcutArea {
			usable = append(usable, o)
		}
	}
	sort.Slice(usable, func(i, j int) bool {
		return usable[i].Area() > usable[j].Area()
	})
	return usable
}

// TotalOffcutArea returns the combined area of all offcuts in square mm.
func TotalOffcutArea(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}

// DeriveOffcuts reconstructs the guillotine-complement remnants of a board
// from its part placements: the strip to the right of all parts and the
// strip above them, each kept only when large enough to be usable. Boards
// persisted without offcut data get their offcuts rebuilt this way.
func DeriveOffcuts(b *Board) []Offcut {
	if len(b.Parts) == 0 {
		return []Offcut{{
			ID:            uuid.New().String()[:8],
			SourceBoardID: b.ID,
			Length:        b.TotalLength,
			Width:         b.TotalWidth,
			Material:      b.Material,
		}}
	}

	// Bounding extent of all placed parts, kerf included.
	var maxRight, maxTop float64
	for _, p := range b.Parts {
		right := p.X + p.PlacedLength() + b.Kerf
		top := p.Y + p.PlacedWidth() + b.Kerf
		if right > maxRight {
			maxRight = right
		}
		if top > maxTop {
			maxTop = top
		}
	}

	var offcuts []Offcut

	rightStrip := b.TotalLength - maxRight
	if rightStrip >= MinOffcutDimension && b.TotalWidth >= MinOffcutDimension && rightStrip*b.TotalWidth > MinOffcutArea {
		offcuts = append(offcuts, Offcut{
			ID:            uuid.New().String()[:8],
			SourceBoardID: b.ID,
			X:             maxRight,
			Y:             0,
			Length:        rightStrip,
			Width:         b.TotalWidth,
			Material:      b.Material,
		})
	}

	// Top strip only spans up to the parts' right extent so it never
	// overlaps the right strip.
	topStrip := b.TotalWidth - maxTop
	topLength := math.Min(maxRight, b.TotalLength)
	if topStrip >= MinOffcutDimension && topLength >= MinOffcutDimension && topStrip*topLength > MinOffcutArea {
		offcuts = append(offcuts, Offcut{
			ID:            uuid.New().String()[:8],
			SourceBoardID: b.ID,
			X:             0,
			Y:             maxTop,
			Length:        topLength,
			Width:         topStrip,
			Material:      b.Material,
		})
	}

	sort.Slice(offcuts, func(i, j int) bool {
		return offcuts[i].Area() > offcuts[j].Area()
	})
	return offcuts
}
