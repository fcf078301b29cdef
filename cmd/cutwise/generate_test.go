package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cutwise/cutwise/internal/config"
	"github.com/cutwise/cutwise/internal/solution"
)

// TestNewGenerateCmd tests the generate command creation.
func TestNewGenerateCmd(t *testing.T) {
	t.Parallel()

	cmd := NewGenerateCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "generate <solution.json>" {
			t.Errorf("expected use 'generate <solution.json>', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		t.Parallel()
		if cmd.Args == nil {
			t.Error("expected Args validator")
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
		if flag.DefValue != "." {
			t.Errorf("expected default '.', got %q", flag.DefValue)
		}
	})

	t.Run("has pricebook flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("pricebook")
		if flag == nil {
			t.Fatal("expected pricebook flag")
		}
		if flag.Shorthand != "p" {
			t.Errorf("expected shorthand 'p', got %q", flag.Shorthand)
		}
	})

	t.Run("has markdown flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("markdown")
		if flag == nil {
			t.Fatal("expected markdown flag")
		}
		if flag.Shorthand != "m" {
			t.Errorf("expected shorthand 'm', got %q", flag.Shorthand)
		}
	})

	t.Run("has labels flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("labels")
		if flag == nil {
			t.Fatal("expected labels flag")
		}
		if flag.Shorthand != "l" {
			t.Errorf("expected shorthand 'l', got %q", flag.Shorthand)
		}
	})

	t.Run("has dxf flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("dxf")
		if flag == nil {
			t.Fatal("expected dxf flag")
		}
		if flag.Shorthand != "d" {
			t.Errorf("expected shorthand 'd', got %q", flag.Shorthand)
		}
	})
}

// writeGenerateFixtures saves a sample solution and starter pricebook into
// dir and returns their paths.
func writeGenerateFixtures(t *testing.T, dir string) (solutionPath, pricebookPath string) {
	t.Helper()

	solutionPath = filepath.Join(dir, "kitchen.json")
	if err := solution.Save(solutionPath, solution.Sample()); err != nil {
		t.Fatalf("failed to save sample solution: %v", err)
	}

	pricebookPath = filepath.Join(dir, "prices.yaml")
	if err := config.SavePricebook(pricebookPath, config.StarterPricebook()); err != nil {
		t.Fatalf("failed to save pricebook: %v", err)
	}

	return solutionPath, pricebookPath
}

// statNonEmpty fails the test unless path exists with non-zero size.
func statNonEmpty(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected artifact %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("expected non-empty artifact %s", path)
	}
}

// TestRunGenerateCmd tests the generate command execution.
func TestRunGenerateCmd(t *testing.T) {
	t.Run("generates core artifacts", func(t *testing.T) {
		tmpDir := t.TempDir()
		solutionPath, pricebookPath := writeGenerateFixtures(t, tmpDir)
		outDir := filepath.Join(tmpDir, "reports")

		var buf bytes.Buffer
		root := NewRootCmd()
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs([]string{"generate", solutionPath, "-o", outDir, "-p", pricebookPath})

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		statNonEmpty(t, filepath.Join(outDir, "kitchen_layout.pdf"))
		statNonEmpty(t, filepath.Join(outDir, "kitchen_report.xlsx"))
		statNonEmpty(t, filepath.Join(outDir, "kitchen_material_usage.csv"))

		output := buf.String()
		if !strings.Contains(output, "kitchen_layout.pdf") {
			t.Errorf("expected output to report the layout pdf, got %q", output)
		}
	})

	t.Run("generates optional artifacts on request", func(t *testing.T) {
		tmpDir := t.TempDir()
		solutionPath, pricebookPath := writeGenerateFixtures(t, tmpDir)
		outDir := filepath.Join(tmpDir, "reports")

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{
			"generate", solutionPath,
			"-o", outDir,
			"-p", pricebookPath,
			"--markdown", "--labels", "--dxf",
		})

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		statNonEmpty(t, filepath.Join(outDir, "kitchen_layout.md"))
		statNonEmpty(t, filepath.Join(outDir, "kitchen_labels.pdf"))

		dxfDir := filepath.Join(outDir, "kitchen_dxf")
		entries, err := os.ReadDir(dxfDir)
		if err != nil {
			t.Fatalf("expected dxf directory: %v", err)
		}
		if len(entries) != len(solution.Sample().Boards) {
			t.Errorf("expected one dxf per board, got %d files", len(entries))
		}
	})

	t.Run("proceeds without a pricebook", func(t *testing.T) {
		tmpDir := t.TempDir()
		solutionPath := filepath.Join(tmpDir, "kitchen.json")
		if err := solution.Save(solutionPath, solution.Sample()); err != nil {
			t.Fatalf("failed to save sample solution: %v", err)
		}
		outDir := filepath.Join(tmpDir, "reports")

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"generate", solutionPath, "-o", outDir})

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		statNonEmpty(t, filepath.Join(outDir, "kitchen_material_usage.csv"))
	})

	t.Run("fails on missing solution file", func(t *testing.T) {
		tmpDir := t.TempDir()

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"generate", filepath.Join(tmpDir, "missing.json")})

		err := root.Execute()
		if err == nil {
			t.Fatal("expected error for missing solution file")
		}
		if !strings.Contains(err.Error(), "loading solution") {
			t.Errorf("expected 'loading solution' error, got %v", err)
		}
	})

	t.Run("fails on missing explicit pricebook", func(t *testing.T) {
		tmpDir := t.TempDir()
		solutionPath, _ := writeGenerateFixtures(t, tmpDir)

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{
			"generate", solutionPath,
			"-o", tmpDir,
			"-p", filepath.Join(tmpDir, "missing.yaml"),
		})

		err := root.Execute()
		if err == nil {
			t.Fatal("expected error for missing explicit pricebook")
		}
		if !strings.Contains(err.Error(), "pricebook not found") {
			t.Errorf("expected 'pricebook not found' error, got %v", err)
		}
	})

	t.Run("rejects missing argument", func(t *testing.T) {
		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"generate"})

		if err := root.Execute(); err == nil {
			t.Fatal("expected error when no solution file is given")
		}
	})
}

func TestSolutionBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"kitchen.json", "kitchen"},
		{"/orders/q3/wardrobe.json", "wardrobe"},
		{"order.solution.json", "order.solution"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := solutionBaseName(tt.path); got != tt.want {
			t.Errorf("solutionBaseName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
