package model

import (
	"testing"
)

func TestOffcutArea(t *testing.T) {
	o := Offcut{Length: 500, Width: 300}
	if o.Area() != 150000 {
		t.Errorf("expected area 150000, got %.0f", o.Area())
	}
}

func TestTotalOffcutArea(t *testing.T) {
	offcuts := []Offcut{
		{Length: 500, Width: 300},
		{Length: 200, Width: 100},
	}
	total := TotalOffcutArea(offcuts)
	expected := 500*300 + 200*100.0
	if total != expected {
		t.Errorf("expected total area %.0f, got %.0f", expected, total)
	}
}

func TestUsableOffcutsThreshold(t *testing.T) {
	offcuts := []Offcut{
		{ID: "at", Length: 100, Width: 100},        // 10,000 exactly: excluded
		{ID: "below", Length: 99.99, Width: 100},   // 9,999: excluded
		{ID: "above", Length: 100.01, Width: 100},  // 10,001: included
		{ID: "large", Length: 1000, Width: 500},    // included
	}
	usable := UsableOffcuts(offcuts)
	if len(usable) != 2 {
		t.Fatalf("expected 2 usable offcuts, got %d", len(usable))
	}
	if usable[0].ID != "large" || usable[1].ID != "above" {
		t.Errorf("expected [large above] sorted by area desc, got [%s %s]", usable[0].ID, usable[1].ID)
	}
}

func TestUsableOffcutsEmpty(t *testing.T) {
	if got := UsableOffcuts(nil); len(got) != 0 {
		t.Errorf("expected no usable offcuts from nil input, got %d", len(got))
	}
}

func TestDeriveOffcutsEmptyBoard(t *testing.T) {
	m, _ := ParseMaterial("2614 SF_18MR_2614 SF")
	b := &Board{ID: "B1", Material: m, TotalLength: 2440, TotalWidth: 1220, Kerf: 3}

	offcuts := DeriveOffcuts(b)
	if len(offcuts) != 1 {
		t.Fatalf("expected 1 offcut for empty board, got %d", len(offcuts))
	}
	if offcuts[0].Length != 2440 || offcuts[0].Width != 1220 {
		t.Errorf("expected full board as offcut, got %.0fx%.0f", offcuts[0].Length, offcuts[0].Width)
	}
	if offcuts[0].SourceBoardID != "B1" {
		t.Errorf("expected source board B1, got %s", offcuts[0].SourceBoardID)
	}
}

func TestDeriveOffcutsRightStrip(t *testing.T) {
	m, _ := ParseMaterial("2614 SF_18MR_2614 SF")
	b := &Board{
		ID: "B1", Material: m, TotalLength: 2440, TotalWidth: 1220, Kerf: 3,
		Parts: []Part{
			{ID: "P1", RequestedLength: 1000, RequestedWidth: 1220, ActualLength: 1000, ActualWidth: 1220},
		},
	}
	offcuts := DeriveOffcuts(b)
	// Right strip: X=1003, Length=1437, Width=1220
	foundRight := false
	for _, o := range offcuts {
		if o.X > 900 && o.Length > 1000 {
			foundRight = true
			break
		}
	}
	if !foundRight {
		t.Error("expected to find right strip offcut")
	}
}

func TestDeriveOffcutsTopStrip(t *testing.T) {
	m, _ := ParseMaterial("2614 SF_18MR_2614 SF")
	b := &Board{
		ID: "B1", Material: m, TotalLength: 2440, TotalWidth: 1220, Kerf: 3,
		Parts: []Part{
			{ID: "P1", RequestedLength: 2440, RequestedWidth: 500, ActualLength: 2440, ActualWidth: 500},
		},
	}
	offcuts := DeriveOffcuts(b)
	// Top strip: Y=503, Width=717
	foundTop := false
	for _, o := range offcuts {
		if o.Y > 400 && o.Width > 600 {
			foundTop = true
			break
		}
	}
	if !foundTop {
		t.Error("expected to find top strip offcut")
	}
}

func TestDeriveOffcutsSmallRemnantIgnored(t *testing.T) {
	m, _ := ParseMaterial("17WPC")
	b := &Board{
		ID: "B1", Material: m, TotalLength: 500, TotalWidth: 500, Kerf: 3,
		Parts: []Part{
			{ID: "P1", RequestedLength: 480, RequestedWidth: 480, ActualLength: 480, ActualWidth: 480},
		},
	}
	offcuts := DeriveOffcuts(b)
	// Remaining strips are ~17mm wide, below MinOffcutDimension.
	if len(offcuts) != 0 {
		t.Errorf("expected 0 offcuts for near-full board, got %d", len(offcuts))
	}
}
