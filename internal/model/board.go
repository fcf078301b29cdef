package model

// Board represents a raw material sheet with the parts the optimizer placed
// on it and the rectangular offcuts still available.
type Board struct {
	ID          string          `json:"id"`
	Material    MaterialDetails `json:"material"`
	TotalLength float64         `json:"total_length"` // mm
	TotalWidth  float64         `json:"total_width"`  // mm
	Kerf        float64         `json:"kerf"`         // mm, saw blade width
	Parts       []Part          `json:"parts_on_board"`
	Offcuts     []Offcut        `json:"available_rectangles,omitempty"`
}

// TotalArea returns the full board area in square mm.
func (b *Board) TotalArea() float64 {
	return b.TotalLength * b.TotalWidth
}

// UsedArea returns the summed footprint of all placed parts in square mm,
// using placed (actual-or-requested) dimensions without kerf.
func (b *Board) UsedArea() float64 {
	var used float64
	for _, p := range b.Parts {
		used += p.Area()
	}
	return used
}

// Utilization returns the percentage of board area covered by placed parts.
// An empty or zero-area board utilizes 0%.
func (b *Board) Utilization() float64 {
	total := b.TotalArea()
	if total == 0 {
		return 0
	}
	return (b.UsedArea() / total) * 100
}

// RemainingArea returns the board area left after cutting, in square mm.
// Each part consumes its kerf-expanded requested footprint here, so this
// figure is deliberately NOT total minus UsedArea: UsedArea measures the
// finished pieces, RemainingArea measures what the saw left behind. Both
// views feed different reports.
func (b *Board) RemainingArea() float64 {
	var used float64
	for _, p := range b.Parts {
		used += p.AreaWithKerf(b.Kerf)
	}
	return b.TotalArea() - used
}

// LargestOffcut returns the biggest available offcut by area, or nil when
// the board has none.
func (b *Board) LargestOffcut() *Offcut {
	if len(b.Offcuts) == 0 {
		return nil
	}
	largest := &b.Offcuts[0]
	for i := range b.Offcuts[1:] {
		if b.Offcuts[i+1].Area() > largest.Area() {
			largest = &b.Offcuts[i+1]
		}
	}
	return largest
}
