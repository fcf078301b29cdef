package export

import (
	"testing"
)

func TestGenerator_PartLabels(t *testing.T) {
	g := New()
	data, err := g.PartLabels(buildReportInput(t))
	if err != nil {
		t.Fatalf("PartLabels returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("PartLabels returned empty document")
	}
	// Four labels with QR images should be a reasonable size
	if len(data) < 1000 {
		t.Errorf("label PDF seems too small: %d bytes", len(data))
	}
}

func TestGenerator_PartLabels_NoParts(t *testing.T) {
	g := New()
	input := buildReportInput(t)
	for _, b := range input.Boards {
		b.Parts = nil
	}

	if _, err := g.PartLabels(input); err == nil {
		t.Fatal("expected error when no parts are placed, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	input := buildReportInput(t)
	labels := CollectLabelInfos(input.Boards)

	if len(labels) != 4 {
		t.Fatalf("collected %d labels, want 4", len(labels))
	}

	first := labels[0]
	if first.PartID != "p1" || first.BoardID != "Board 1_18MR" {
		t.Errorf("first label = %s on %s, want p1 on Board 1_18MR", first.PartID, first.BoardID)
	}
	if first.Length != 600 || first.Width != 400 {
		t.Errorf("first label dims = %v x %v, want 600 x 400", first.Length, first.Width)
	}

	// p3 has an upgrade: label carries the assigned material.
	p3 := labels[2]
	if !p3.Upgraded {
		t.Error("p3 label should be marked upgraded")
	}
	if p3.Material != "2614 SF_18HDHMR_2614 SF" {
		t.Errorf("p3 label material = %q, want the assigned material", p3.Material)
	}

	// p3 has no actual dims recorded: label falls back to requested.
	if p3.Length != 400 || p3.Width != 300 {
		t.Errorf("p3 label dims = %v x %v, want requested 400 x 300", p3.Length, p3.Width)
	}
}

func TestCollectLabelInfos_Empty(t *testing.T) {
	if labels := CollectLabelInfos(nil); len(labels) != 0 {
		t.Errorf("expected no labels for nil boards, got %d", len(labels))
	}
}
