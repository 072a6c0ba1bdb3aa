package difftree

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMarkerBands_FiltersUnchanged(t *testing.T) {
	rows := []FlatRow{
		{Path: "", Type: DiffChanged, Kind: RowNode},
		{Path: "a", Type: DiffUnchanged, Kind: RowNode},
		{Path: "b", Type: DiffAdded, Kind: RowNode},
		{Path: "", Type: DiffChanged, Kind: RowClose},
	}
	markers := MarkerBands(rows)

	if len(markers) != 3 {
		t.Fatalf("expected 3 markers, got %d", len(markers))
	}
	// Positions come from the index in the full row list.
	if !almostEqual(markers[1].Top, 2.0/4.0*100) {
		t.Errorf("expected marker at 50%%, got %v", markers[1].Top)
	}
	if markers[1].Type != DiffAdded {
		t.Errorf("expected added marker, got %v", markers[1].Type)
	}
	// 100/4 = 25 is above the 2% floor.
	if !almostEqual(markers[0].Height, 25) {
		t.Errorf("expected height 25, got %v", markers[0].Height)
	}
}

func TestMarkerBands_HeightFloor(t *testing.T) {
	rows := make([]FlatRow, 200)
	for i := range rows {
		rows[i] = FlatRow{Type: DiffAdded}
	}
	markers := MarkerBands(rows)
	if !almostEqual(markers[0].Height, 2) {
		t.Errorf("expected 2%% floor, got %v", markers[0].Height)
	}
}

func TestMarkerBands_Empty(t *testing.T) {
	if m := MarkerBands(nil); m != nil {
		t.Errorf("expected no markers, got %d", len(m))
	}
}

func TestViewportBand(t *testing.T) {
	b := ViewportBand(50, 200, 40)
	if !almostEqual(b.Top, 25) {
		t.Errorf("expected top 25, got %v", b.Top)
	}
	if !almostEqual(b.Height, 20) {
		t.Errorf("expected height 20, got %v", b.Height)
	}
}

func TestViewportBand_HeightFloor(t *testing.T) {
	b := ViewportBand(0, 1000, 10)
	if !almostEqual(b.Height, 5) {
		t.Errorf("expected 5%% floor, got %v", b.Height)
	}
}

func TestViewportBand_DegenerateHeight(t *testing.T) {
	b := ViewportBand(0, 0, 10)
	if !almostEqual(b.Top, 0) || !almostEqual(b.Height, 100) {
		t.Errorf("expected full band for empty container, got %+v", b)
	}
}

func TestClickOffset(t *testing.T) {
	if off := ClickOffset(0.5, 200, 40); !almostEqual(off, 80) {
		t.Errorf("expected 80, got %v", off)
	}
	if off := ClickOffset(0, 200, 40); !almostEqual(off, 0) {
		t.Errorf("expected 0, got %v", off)
	}
	if off := ClickOffset(1, 200, 40); !almostEqual(off, 160) {
		t.Errorf("expected 160, got %v", off)
	}
	// Content shorter than the viewport clamps to zero.
	if off := ClickOffset(0.7, 30, 40); !almostEqual(off, 0) {
		t.Errorf("expected clamp to 0, got %v", off)
	}
}
