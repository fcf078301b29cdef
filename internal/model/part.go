package model

// Grain represents the grain direction constraint for a part.
type Grain int

const (
	GrainFree      Grain = iota // No grain constraint, can rotate freely
	GrainSensitive              // Grain direction fixed, must not rotate
)

func (g Grain) String() string {
	if g == GrainSensitive {
		return "Sensitive"
	}
	return "Free"
}

// Part represents a single cut piece placed on a board by the upstream
// optimizer. Placement fields may be only partially populated: actual
// dimensions fall back to requested ones, positions default to 0 and flags
// to false, so reports never fail on a sparse part.
type Part struct {
	ID              string  `json:"id"`
	RequestedLength float64 `json:"requested_length"` // mm, as ordered
	RequestedWidth  float64 `json:"requested_width"`  // mm, as ordered
	Quantity        int     `json:"quantity,omitempty"`
	Grain           Grain   `json:"grains"`

	// Placement attributes, set when the optimizer places the part.
	AssignedBoardID string  `json:"assigned_board_id,omitempty"`
	ActualLength    float64 `json:"actual_length,omitempty"` // mm, as cut; 0 = not set
	ActualWidth     float64 `json:"actual_width,omitempty"`  // mm, as cut; 0 = not set
	X               float64 `json:"x_pos,omitempty"`         // mm from board left edge
	Y               float64 `json:"y_pos,omitempty"`         // mm from board top edge
	Rotated         bool    `json:"rotated,omitempty"`

	// Material upgrade tracking. AssignedMaterial is set only when the
	// optimizer substituted a different material than ordered.
	Material         MaterialDetails  `json:"material"`
	AssignedMaterial *MaterialDetails `json:"assigned_material,omitempty"`
	Upgraded         bool             `json:"is_upgraded,omitempty"`
}

// PlacedLength returns the as-cut length, falling back to the requested
// length when the optimizer did not record one.
func (p Part) PlacedLength() float64 {
	if p.ActualLength > 0 {
		return p.ActualLength
	}
	return p.RequestedLength
}

// PlacedWidth returns the as-cut width, falling back to the requested width.
func (p Part) PlacedWidth() float64 {
	if p.ActualWidth > 0 {
		return p.ActualWidth
	}
	return p.RequestedWidth
}

// Area returns the part's footprint in square mm using placed dimensions.
func (p Part) Area() float64 {
	return p.PlacedLength() * p.PlacedWidth()
}

// AreaWithKerf returns the board area the part consumes once the saw kerf is
// accounted for: the requested footprint expanded by kerf on each axis.
func (p Part) AreaWithKerf(kerf float64) float64 {
	return (p.RequestedLength + kerf) * (p.RequestedWidth + kerf)
}

// CanRotate reports whether the part may be rotated 90 degrees.
func (p Part) CanRotate() bool {
	return p.Grain != GrainSensitive
}

// EffectiveMaterial returns the material the part was actually cut from:
// the upgraded assignment when one exists, otherwise the ordered material.
func (p Part) EffectiveMaterial() MaterialDetails {
	if p.AssignedMaterial != nil {
		return *p.AssignedMaterial
	}
	return p.Material
}
