// Package config loads the pricebook: the YAML file carrying the core and
// laminate price tables that report generation prices materials against.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/cutwise/cutwise/internal/model"
)

// AppName is the directory name used under XDG base directories.
const AppName = "cutwise"

// DefaultPricebookFile is the default pricebook file name.
const DefaultPricebookFile = "pricebook.yaml"

// ErrPricebookNotFound is returned when the pricebook file does not exist.
var ErrPricebookNotFound = errors.New("pricebook file not found")

// CoreEntry is one core material record in the pricebook.
type CoreEntry struct {
	PricePerSqm    float64 `yaml:"price_per_sqm"`
	Thickness      float64 `yaml:"thickness"`
	StandardLength float64 `yaml:"standard_length"`
	StandardWidth  float64 `yaml:"standard_width"`
	GradeLevel     int     `yaml:"grade_level"`
}

// Pricebook is the YAML file shape: core materials keyed by the core token
// that appears in composite material strings, laminates keyed by name with a
// flat price per square meter.
type Pricebook struct {
	Cores     map[string]CoreEntry `yaml:"cores"`
	Laminates map[string]float64   `yaml:"laminates"`
}

// LoadPricebook reads and validates a pricebook file. Records carrying a
// negative price are skipped with a warning rather than failing the load; a
// partial price table still prices the rest of the report. If the file does
// not exist, ErrPricebookNotFound is returned so callers can distinguish a
// missing file from a malformed one.
func LoadPricebook(path string, logger *slog.Logger) (*Pricebook, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPricebookNotFound
		}
		return nil, fmt.Errorf("reading pricebook: %w", err)
	}

	var pb Pricebook
	if err := yaml.Unmarshal(data, &pb); err != nil {
		return nil, fmt.Errorf("parsing pricebook %s: %w", path, err)
	}

	if pb.Cores == nil {
		pb.Cores = make(map[string]CoreEntry)
	}
	if pb.Laminates == nil {
		pb.Laminates = make(map[string]float64)
	}

	for name, core := range pb.Cores {
		if core.PricePerSqm < 0 {
			logger.Warn("skipping core with negative price", "core", name, "price", core.PricePerSqm)
			delete(pb.Cores, name)
		}
	}
	for name, price := range pb.Laminates {
		if price < 0 {
			logger.Warn("skipping laminate with negative price", "laminate", name, "price", price)
			delete(pb.Laminates, name)
		}
	}

	return &pb, nil
}

// SavePricebook writes a pricebook as YAML, creating parent directories as
// needed.
func SavePricebook(path string, pb *Pricebook) error {
	data, err := yaml.Marshal(pb)
	if err != nil {
		return fmt.Errorf("encoding pricebook: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating pricebook directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing pricebook: %w", err)
	}
	return nil
}

// FindPricebook searches for the pricebook in the following order:
// 1. If path is specified, use it directly
// 2. Look for pricebook.yaml in the current directory
// 3. Look for it in the XDG config directory
//
// Returns the path if found, or empty string if not found.
func FindPricebook(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdBook := filepath.Join(cwd, DefaultPricebookFile)
		if _, err := os.Stat(cwdBook); err == nil {
			return cwdBook
		}
	}

	xdgBook := DefaultPricebookPath()
	if _, err := os.Stat(xdgBook); err == nil {
		return xdgBook
	}

	return ""
}

// DefaultPricebookPath returns the XDG config location for the pricebook.
// On Linux: ~/.config/cutwise/pricebook.yaml
// On macOS: ~/Library/Application Support/cutwise/pricebook.yaml
func DefaultPricebookPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, DefaultPricebookFile)
}

// Tables converts the pricebook into the model's lookup tables.
func (pb *Pricebook) Tables() (model.CorePrices, model.LaminatePrices) {
	cores := make(model.CorePrices, len(pb.Cores))
	for name, c := range pb.Cores {
		cores[name] = model.CoreMaterial{
			PricePerSqm:    c.PricePerSqm,
			Thickness:      c.Thickness,
			StandardLength: c.StandardLength,
			StandardWidth:  c.StandardWidth,
			GradeLevel:     c.GradeLevel,
		}
	}
	laminates := make(model.LaminatePrices, len(pb.Laminates))
	for name, price := range pb.Laminates {
		laminates[name] = price
	}
	return cores, laminates
}

// StarterPricebook returns a pricebook seeded with common board materials,
// used by the init command as a template to edit.
func StarterPricebook() *Pricebook {
	return &Pricebook{
		Cores: map[string]CoreEntry{
			"18MR": {
				PricePerSqm:    450,
				Thickness:      18,
				StandardLength: 2440,
				StandardWidth:  1220,
				GradeLevel:     1,
			},
			"18HDHMR": {
				PricePerSqm:    650,
				Thickness:      18,
				StandardLength: 2440,
				StandardWidth:  1220,
				GradeLevel:     2,
			},
			"18BWR": {
				PricePerSqm:    850,
				Thickness:      18,
				StandardLength: 2440,
				StandardWidth:  1220,
				GradeLevel:     3,
			},
		},
		Laminates: map[string]float64{
			"2614 SF": 120,
			"2439 SF": 140,
			"WHITE":   80,
		},
	}
}
