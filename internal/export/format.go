package export

import (
	"fmt"
	"math"
)

// formatCurrency renders a money value with the rupee prefix and two
// decimals, e.g. "₹1488.40".
func formatCurrency(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

// formatPercent renders a percentage with one decimal, e.g. "50.0%".
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// yesNo renders a boolean flag the way the report sheets expect it.
func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// round2 rounds an area or similar figure to two decimals for tabulation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
