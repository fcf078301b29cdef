package model

// SquareFeetPerSquareMeter converts between the two area unit systems used
// in pricing. Prices arrive per square meter; summary sheets report per
// square foot (price per sqft = price per sqm / 10.764).
const SquareFeetPerSquareMeter = 10.764

// sqmmPerSquareMeter is the number of square millimeters in one square meter.
const sqmmPerSquareMeter = 1_000_000.0

// SquareMMToSquareM converts an area from square millimeters to square meters.
func SquareMMToSquareM(area float64) float64 {
	return area / sqmmPerSquareMeter
}

// SquareMMToSquareFeet converts an area from square millimeters to square
// feet, going through square meters so the 10.764 factor applies uniformly.
func SquareMMToSquareFeet(area float64) float64 {
	return SquareMMToSquareM(area) * SquareFeetPerSquareMeter
}

// CoreMaterial holds the purchasable attributes of one core material.
type CoreMaterial struct {
	PricePerSqm    float64 `json:"price_per_sqm"`
	Thickness      float64 `json:"thickness"`       // mm
	StandardLength float64 `json:"standard_length"` // mm
	StandardWidth  float64 `json:"standard_width"`  // mm
	GradeLevel     int     `json:"grade_level"`     // 1 = lowest grade; upgrades move to higher levels
}

// CorePrices maps a core material name to its purchasable attributes.
type CorePrices map[string]CoreMaterial

// LaminatePrices maps a laminate name to its price per square meter.
type LaminatePrices map[string]float64
