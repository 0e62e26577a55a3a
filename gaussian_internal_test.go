package omgrid

import (
	"errors"
	"testing"
)

// tieGrid builds a tiny synthetic grid with exactly representable row
// latitudes so equidistant queries are true floating-point ties.
func tieGrid(tb RowTieBreak) *GaussianGrid {
	return &GaussianGrid{
		rowLats:    []float64{3, 1, -1, -3},
		rowLengths: []int{4, 8, 8, 4},
		rowOffsets: []int{0, 4, 12, 20},
		total:      24,
		tieBreak:   tb,
		margin:     1,
	}
}

func TestFindRowTieBreak(t *testing.T) {
	low := tieGrid(TieLowRow)
	high := tieGrid(TieHighRow)

	// lat=2 is exactly between rows 0 (lat 3) and 1 (lat 1).
	y, err := low.findRow(2)
	if err != nil || y != 0 {
		t.Errorf("TieLowRow: findRow(2) = %d, %v; want 0", y, err)
	}
	y, err = high.findRow(2)
	if err != nil || y != 1 {
		t.Errorf("TieHighRow: findRow(2) = %d, %v; want 1", y, err)
	}

	// Exact row centers are never ties.
	for _, tc := range []struct {
		lat  float64
		want int
	}{{3, 0}, {1, 1}, {-1, 2}, {-3, 3}, {2.5, 0}, {1.5, 1}, {-2.5, 3}} {
		y, err := low.findRow(tc.lat)
		if err != nil || y != tc.want {
			t.Errorf("findRow(%v) = %d, %v; want %d", tc.lat, y, err, tc.want)
		}
	}
}

func TestFindRowMargin(t *testing.T) {
	g := tieGrid(TieLowRow)

	// Exactly at the margin is still inside.
	y, err := g.findRow(4)
	if err != nil || y != 0 {
		t.Errorf("findRow(4) = %d, %v; want 0", y, err)
	}
	y, err = g.findRow(-4)
	if err != nil || y != 3 {
		t.Errorf("findRow(-4) = %d, %v; want 3", y, err)
	}

	if _, err := g.findRow(4.5); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("findRow(4.5): expected ErrOutOfBounds, got %v", err)
	}
	if _, err := g.findRow(-4.5); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("findRow(-4.5): expected ErrOutOfBounds, got %v", err)
	}
}
