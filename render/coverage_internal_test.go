package render

import (
	"testing"

	"github.com/ccurtis0/fast-marching-method/grid"
)

func TestContourCoverageMonotonicInDistance(t *testing.T) {
	depths := []float64{0, 0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.35, 0.5, 1.0}

	prev := contourCoverage(depths[0])
	if prev != 1 {
		t.Fatalf("contourCoverage(0) = %v; want 1 (full coverage at the interface)", prev)
	}
	for _, d := range depths[1:] {
		got := contourCoverage(d)
		if got > prev {
			t.Errorf("contourCoverage(%v) = %v; want <= previous value %v (non-increasing)", d, got, prev)
		}
		prev = got
	}
	if got := contourCoverage(contourAntialiasWidth); got != 0 {
		t.Errorf("contourCoverage(%v) = %v; want 0 at the band edge", contourAntialiasWidth, got)
	}
	if got := contourCoverage(2 * contourAntialiasWidth); got != 0 {
		t.Errorf("contourCoverage(2*width) = %v; want 0 beyond the band", got)
	}
}

// TestCellContourCoverageMonotonicAwayFromInterface lays out a row of cells
// whose values increase linearly, placing the zero crossing near the left
// edge. As cells sit farther from that crossing, cellContourCoverage must
// not increase.
func TestCellContourCoverageMonotonicAwayFromInterface(t *testing.T) {
	size := grid.Size{8, 1}
	strides := grid.Strides(size)
	values := make([]float64, size.Product())
	for i0 := 0; i0 < size[0]; i0++ {
		// Crossing sits between i0=0 (value -0.1) and i0=1 (value 0.9),
		// then increases by 1 per cell thereafter.
		values[grid.Linear(grid.Idx{i0, 0}, strides)] = -0.1 + float64(i0)
	}

	prev := cellContourCoverage(0, 0, size, values, strides)
	for i0 := 1; i0 < size[0]; i0++ {
		got := cellContourCoverage(i0, 0, size, values, strides)
		if got > prev {
			t.Errorf("cellContourCoverage(%d,0) = %v; want <= previous value %v (non-increasing away from interface)", i0, got, prev)
		}
		prev = got
	}
}

// TestCellContourCoverageMonotonicAsEdgeFractionGrows sweeps a single
// cell's value against a fixed opposite-sign neighbor, moving the
// computed crossing fraction (and thus the cell's depth from the
// interface, in cell units) steadily away from zero. Coverage must not
// increase as that fraction grows.
func TestCellContourCoverageMonotonicAsEdgeFractionGrows(t *testing.T) {
	size := grid.Size{2, 1}
	strides := grid.Strides(size)
	selfValues := []float64{-0.01, -0.05, -0.1, -0.2, -0.3, -0.5, -0.7, -0.9}

	prev := 1.0
	for _, sv := range selfValues {
		values := []float64{sv, 1}
		got := cellContourCoverage(0, 0, size, values, strides)
		if got > prev {
			t.Errorf("cellContourCoverage with self=%v = %v; want <= previous value %v (non-increasing as crossing fraction grows)", sv, got, prev)
		}
		prev = got
	}
}
