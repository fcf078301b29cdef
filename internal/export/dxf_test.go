package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerator_SaveLayoutDXF(t *testing.T) {
	g := New()
	dir := filepath.Join(t.TempDir(), "dxf")
	input := buildReportInput(t)

	paths, err := g.SaveLayoutDXF(input, dir)
	if err != nil {
		t.Fatalf("SaveLayoutDXF returned error: %v", err)
	}
	if len(paths) != len(input.Boards) {
		t.Fatalf("wrote %d files, want %d", len(paths), len(input.Boards))
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("DXF file was not created: %v", err)
		}
		if info.Size() == 0 {
			t.Errorf("DXF file %s is empty", path)
		}
	}
}

func TestGenerator_SaveLayoutDXF_NoBoards(t *testing.T) {
	g := New()
	if _, err := g.SaveLayoutDXF(ReportInput{}, t.TempDir()); err == nil {
		t.Fatal("expected error for empty board list, got nil")
	}
}

func TestDXFFileName(t *testing.T) {
	tests := []struct {
		num     int
		boardID string
		want    string
	}{
		{1, "Board 1_18MR", "board_1_Board_1_18MR.dxf"},
		{2, "a/b", "board_2_a-b.dxf"},
		{3, "plain", "board_3_plain.dxf"},
	}
	for _, tt := range tests {
		if got := dxfFileName(tt.num, tt.boardID); got != tt.want {
			t.Errorf("dxfFileName(%d, %q) = %q, want %q", tt.num, tt.boardID, got, tt.want)
		}
	}
}
