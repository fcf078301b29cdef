package export

import (
	"fmt"
	"testing"

	"github.com/cutwise/cutwise/internal/model"
	"github.com/cutwise/cutwise/internal/summary"
)

func mustMaterial(t *testing.T, s string) model.MaterialDetails {
	t.Helper()
	m, err := model.ParseMaterial(s)
	if err != nil {
		t.Fatalf("ParseMaterial(%q) returned error: %v", s, err)
	}
	return m
}

// buildReportInput creates a realistic two-board solution for testing.
func buildReportInput(t *testing.T) ReportInput {
	t.Helper()

	standard := mustMaterial(t, "2614 SF_18MR_2614 SF")
	upgraded := mustMaterial(t, "2614 SF_18HDHMR_2614 SF")

	board1 := &model.Board{
		ID:          "Board 1_18MR",
		Material:    standard,
		TotalLength: 2440,
		TotalWidth:  1220,
		Kerf:        3,
		Parts: []model.Part{
			{
				ID:              "p1",
				RequestedLength: 600,
				RequestedWidth:  400,
				ActualLength:    600,
				ActualWidth:     400,
				X:               10,
				Y:               10,
				Material:        standard,
			},
			{
				ID:              "p2",
				RequestedLength: 500,
				RequestedWidth:  300,
				ActualLength:    300,
				ActualWidth:     500,
				X:               620,
				Y:               10,
				Rotated:         true,
				Material:        standard,
			},
			{
				ID:               "p3",
				RequestedLength:  400,
				RequestedWidth:   300,
				X:                10,
				Y:                420,
				Material:         standard,
				AssignedMaterial: &upgraded,
				Upgraded:         true,
			},
		},
		Offcuts: []model.Offcut{
			{ID: "off1", SourceBoardID: "Board 1_18MR", X: 1640, Y: 0, Length: 800, Width: 600, Material: standard},
			{ID: "off2", SourceBoardID: "Board 1_18MR", X: 0, Y: 1170, Length: 50, Width: 50, Material: standard},
		},
	}
	board2 := &model.Board{
		ID:          "Board 2_18MR",
		Material:    standard,
		TotalLength: 1200,
		TotalWidth:  600,
		Kerf:        3,
		Parts: []model.Part{
			{
				ID:              "p4",
				RequestedLength: 800,
				RequestedWidth:  500,
				ActualLength:    800,
				ActualWidth:     500,
				X:               10,
				Y:               10,
				Material:        standard,
			},
		},
	}

	return ReportInput{
		OrderName: "Kitchen Order",
		Boards:    []*model.Board{board1, board2},
		UnplacedParts: []model.Part{
			{ID: "u1", RequestedLength: 3000, RequestedWidth: 2000, Material: standard, Grain: model.GrainSensitive},
		},
		Upgrades: summary.UpgradesFromTriples([]summary.UpgradeTriple{
			{Original: "2614 SF_18MR_2614 SF", Upgraded: "2614 SF_18HDHMR_2614 SF", Count: 1},
		}),
		InitialCost: 10000,
		FinalCost:   8500,
		Cores: model.CorePrices{
			"18MR":    {PricePerSqm: 500, Thickness: 18},
			"18HDHMR": {PricePerSqm: 700, Thickness: 18},
		},
		Laminates: model.LaminatePrices{
			"2614 SF": 120,
		},
	}
}

func TestGenerator_LayoutPDF(t *testing.T) {
	g := New()
	input := buildReportInput(t)

	data, err := g.LayoutPDF(input)
	if err != nil {
		t.Fatalf("LayoutPDF returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("LayoutPDF returned empty document")
	}
	// Two rendered pages with labels and legends should be a reasonable size
	if len(data) < 1000 {
		t.Errorf("PDF seems too small: %d bytes", len(data))
	}
}

func TestGenerator_LayoutPDF_NoBoards(t *testing.T) {
	g := New()
	input := buildReportInput(t)
	input.Boards = nil

	if _, err := g.LayoutPDF(input); err == nil {
		t.Fatal("expected error for empty board list, got nil")
	}
}

func TestGenerator_LayoutPDF_NoOrderName(t *testing.T) {
	g := New()
	input := buildReportInput(t)
	input.OrderName = ""

	data, err := g.LayoutPDF(input)
	if err != nil {
		t.Fatalf("LayoutPDF returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("LayoutPDF returned empty document")
	}
}

func TestGenerator_LayoutPDF_ManyParts(t *testing.T) {
	g := New()
	input := buildReportInput(t)

	// More parts than palette colors to exercise color cycling
	material := mustMaterial(t, "PLAIN_18MR_PLAIN")
	parts := make([]model.Part, 20)
	for i := range parts {
		parts[i] = model.Part{
			ID:              fmt.Sprintf("p%d", i+1),
			RequestedLength: 100,
			RequestedWidth:  80,
			ActualLength:    100,
			ActualWidth:     80,
			X:               float64((i % 5) * 110),
			Y:               float64((i / 5) * 90),
			Rotated:         i%3 == 0,
			Material:        material,
		}
	}
	input.Boards = []*model.Board{{
		ID:          "dense",
		Material:    material,
		TotalLength: 600,
		TotalWidth:  400,
		Parts:       parts,
	}}

	data, err := g.LayoutPDF(input)
	if err != nil {
		t.Fatalf("LayoutPDF returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("LayoutPDF returned empty document")
	}
}

func TestGenerator_LayoutPDF_ManyBoards(t *testing.T) {
	g := New()
	input := buildReportInput(t)

	// Above the guide-line threshold the renderer must still succeed,
	// just without the dashed overlay.
	material := mustMaterial(t, "PLAIN_18MR_PLAIN")
	boards := make([]*model.Board, maxGuideLineBoards+2)
	for i := range boards {
		boards[i] = &model.Board{
			ID:          fmt.Sprintf("b%d", i+1),
			Material:    material,
			TotalLength: 2440,
			TotalWidth:  1220,
			Parts: []model.Part{
				{ID: fmt.Sprintf("part%d", i+1), RequestedLength: 600, RequestedWidth: 400, Material: material},
			},
		}
	}
	input.Boards = boards

	data, err := g.LayoutPDF(input)
	if err != nil {
		t.Fatalf("LayoutPDF returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("LayoutPDF returned empty document")
	}
}

func TestPartMarkers(t *testing.T) {
	tests := []struct {
		part model.Part
		want string
	}{
		{model.Part{}, ""},
		{model.Part{Rotated: true}, " R"},
		{model.Part{Upgraded: true}, " U"},
		{model.Part{Rotated: true, Upgraded: true}, " R U"},
	}
	for _, tt := range tests {
		if got := partMarkers(tt.part); got != tt.want {
			t.Errorf("partMarkers(rotated=%v, upgraded=%v) = %q, want %q",
				tt.part.Rotated, tt.part.Upgraded, got, tt.want)
		}
	}
}

func TestGuideBoundaries(t *testing.T) {
	edges := []float64{0, 10, 610, 10, 400, 2440, 610}
	got := guideBoundaries(edges, 2440)

	want := []float64{10, 400, 610}
	if len(got) != len(want) {
		t.Fatalf("guideBoundaries() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("guideBoundaries()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGuideBoundaries_AllOutside(t *testing.T) {
	got := guideBoundaries([]float64{0, 1200, 1200, 0}, 1200)
	if len(got) != 0 {
		t.Errorf("expected no boundaries, got %v", got)
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 50, 8},
		{30, 25, 7},
		{10, 15, 6},
	}
	for _, tt := range tests {
		got := labelFontSize(tt.w, tt.h)
		if got != tt.want {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
