// Package solution persists finalized cutting solutions: the JSON handoff
// format carrying an optimizer run's output into report generation.
package solution

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cutwise/cutwise/internal/model"
	"github.com/cutwise/cutwise/internal/summary"
)

// Solution is one optimizer run: the placed board list plus everything the
// reports need alongside it. Material strings round-trip through their
// composite form.
type Solution struct {
	OrderName     string                  `json:"order_name,omitempty"`
	Boards        []*model.Board          `json:"boards"`
	UnplacedParts []model.Part            `json:"unplaced_parts,omitempty"`
	Upgrades      []summary.UpgradeTriple `json:"material_upgrades,omitempty"`
	InitialCost   float64                 `json:"initial_cost"`
	FinalCost     float64                 `json:"final_cost"`
}

// Load reads a solution from a JSON file. Boards that arrive without leftover
// rectangles get them derived from their part placements, so downstream
// offcut reporting works on sparse optimizer output too.
func Load(path string) (*Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading solution file: %w", err)
	}

	var s Solution
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing solution file %s: %w", path, err)
	}

	for _, b := range s.Boards {
		if len(b.Offcuts) == 0 {
			b.Offcuts = model.DeriveOffcuts(b)
		}
	}
	return &s, nil
}

// Save writes the solution to a JSON file, creating parent directories if
// they do not exist.
func Save(path string, s *Solution) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating solution directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding solution: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing solution file: %w", err)
	}
	return nil
}
