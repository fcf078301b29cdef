package model

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaterialDetails describes the full build-up of a board: the structural core
// plus the laminate finish on each face. It is parsed from a composite
// material string such as "2614 SF_18MR_2614 SF" (top_core_bottom).
// It marshals to and from JSON as that composite string.
type MaterialDetails struct {
	FullMaterialString string
	TopLaminateName    string
	CoreName           string
	BottomLaminateName string
	Thickness          float64 // mm
}

var thicknessPrefix = regexp.MustCompile(`^(\d+)`)

// thicknessDefaults maps core names without a numeric thickness prefix to a
// default thickness in mm. Matched by case-insensitive substring, in order.
var thicknessDefaults = []struct {
	name      string
	thickness float64
}{
	{"MR MDF", 18},
	{"PARTICLE BOARD", 18},
	{"PLYWOOD", 18},
	{"HDHMR", 18},
	{"BWR", 18},
	{"WPC", 17},
}

// ParseMaterial parses a composite material string into its components.
// Hyphen-separated strings ("2614 SF-18MR-2614 SF") are tried first, then
// underscore-separated ("2614 SF_18MR_2614 SF"). A bare core name with no
// separator ("17WPC") is accepted and gets "NONE" laminates on both faces.
func ParseMaterial(s string) (MaterialDetails, error) {
	clean := strings.TrimSpace(s)

	var tokens []string
	if strings.Contains(clean, "-") {
		tokens = strings.Split(clean, "-")
	} else {
		tokens = strings.Split(clean, "_")
	}

	var top, core, bottom string
	switch len(tokens) {
	case 3:
		top = strings.TrimSpace(tokens[0])
		core = strings.TrimSpace(tokens[1])
		bottom = strings.TrimSpace(tokens[2])
	case 1:
		top = "NONE"
		core = strings.TrimSpace(tokens[0])
		bottom = "NONE"
	default:
		return MaterialDetails{}, fmt.Errorf("failed to parse material string %q: expected 1 or 3 components, got %d", s, len(tokens))
	}

	if core == "" {
		return MaterialDetails{}, fmt.Errorf("failed to parse material string %q: empty core component", s)
	}

	// Thickness comes from a numeric prefix on the core ("18MR" -> 18mm).
	// Cores named without one ("MR MDF") fall back to a per-material default.
	thickness := 18.0
	if m := thicknessPrefix.FindStringSubmatch(core); m != nil {
		t, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return MaterialDetails{}, fmt.Errorf("failed to parse material string %q: %w", s, err)
		}
		thickness = t
	} else {
		lower := strings.ToLower(core)
		for _, d := range thicknessDefaults {
			if strings.Contains(lower, strings.ToLower(d.name)) {
				thickness = d.thickness
				break
			}
		}
	}

	return MaterialDetails{
		FullMaterialString: s,
		TopLaminateName:    top,
		CoreName:           core,
		BottomLaminateName: bottom,
		Thickness:          thickness,
	}, nil
}

// LaminateName returns the primary (top) laminate name.
func (m MaterialDetails) LaminateName() string {
	return m.TopLaminateName
}

// CostPerSqm returns the combined material cost per square meter: the core
// price plus both laminate faces. Names missing from a price table cost 0,
// so an unpriced material never fails, it just prices at whatever is known.
func (m MaterialDetails) CostPerSqm(cores CorePrices, laminates LaminatePrices) float64 {
	return laminates[m.TopLaminateName] + laminates[m.BottomLaminateName] + cores[m.CoreName].PricePerSqm
}

// String reconstructs the canonical composite form "top_core_bottom".
func (m MaterialDetails) String() string {
	return m.TopLaminateName + "_" + m.CoreName + "_" + m.BottomLaminateName
}

// MarshalJSON encodes the material as its composite string.
func (m MaterialDetails) MarshalJSON() ([]byte, error) {
	s := m.FullMaterialString
	if s == "" {
		s = m.String()
	}
	return json.Marshal(s)
}

// UnmarshalJSON decodes a composite material string.
func (m *MaterialDetails) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMaterial(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
