package eikonal_test

import (
	"math"
	"testing"

	"github.com/ccurtis0/fast-marching-method/eikonal"
	"github.com/ccurtis0/fast-marching-method/grid"
)

func TestSolveOneDimensionalSingleFrozenNeighbor(t *testing.T) {
	// 1-D grid, dx=1, F=1. Cell 1 has one frozen neighbor (cell 0) at
	// distance 0. a = 1, b = 0, c = -1 -> x = 1.
	size := grid.Size{5}
	dist := grid.NewDistanceGrid(size)
	state := grid.NewStateGrid(size)
	dist.Set(grid.Idx{0}, 0)
	state.Set(grid.Idx{0}, grid.Frozen)

	s := eikonal.NewSolver([]float64{1}, 1)
	offsets := grid.Neighborhood(1)
	got := s.Solve(grid.Idx{1}, offsets, dist, state)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("Solve() = %v; want 1", got)
	}
}

func TestSolveTwoDimensionalTwoFrozenNeighbors(t *testing.T) {
	// Cell (1,1) has frozen neighbors (0,1)=1 and (1,0)=1, dx=1, F=1.
	// a = 2, b = -4, c = -1 + 1 + 1 = 1 -> roots 1 -/+ sqrt(2)/2; larger
	// root is 1 + sqrt(2)/2.
	size := grid.Size{3, 3}
	dist := grid.NewDistanceGrid(size)
	state := grid.NewStateGrid(size)
	dist.Set(grid.Idx{0, 1}, 1)
	state.Set(grid.Idx{0, 1}, grid.Frozen)
	dist.Set(grid.Idx{1, 0}, 1)
	state.Set(grid.Idx{1, 0}, grid.Frozen)

	s := eikonal.NewSolver([]float64{1, 1}, 1)
	offsets := grid.Neighborhood(2)
	got := s.Solve(grid.Idx{1, 1}, offsets, dist, state)
	want := 1 + math.Sqrt2/2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Solve() = %v; want %v", got, want)
	}
}

func TestSolveNoFrozenNeighborsIsNaN(t *testing.T) {
	size := grid.Size{3, 3}
	dist := grid.NewDistanceGrid(size)
	state := grid.NewStateGrid(size)
	s := eikonal.NewSolver([]float64{1, 1}, 1)
	offsets := grid.Neighborhood(2)
	got := s.Solve(grid.Idx{1, 1}, offsets, dist, state)
	if !math.IsNaN(got) {
		t.Errorf("Solve() = %v; want NaN", got)
	}
}

func TestSolvePicksSmallerOfTwoFrozenNeighborsPerAxis(t *testing.T) {
	// Along axis 0, neighbors at distance 3 and 1; the smaller (1) must be
	// used. a = 1, b = -2, c = 0 -> roots {0, 2}; larger is 2.
	size := grid.Size{3}
	dist := grid.NewDistanceGrid(size)
	state := grid.NewStateGrid(size)
	dist.Set(grid.Idx{0}, 3)
	state.Set(grid.Idx{0}, grid.Frozen)
	dist.Set(grid.Idx{2}, 1)
	state.Set(grid.Idx{2}, grid.Frozen)

	s := eikonal.NewSolver([]float64{1}, 1)
	offsets := grid.Neighborhood(1)
	got := s.Solve(grid.Idx{1}, offsets, dist, state)
	if math.Abs(got-2) > 1e-9 {
		t.Errorf("Solve() = %v; want 2", got)
	}
}

func TestSolveAnisotropicSpacing(t *testing.T) {
	// dx = (1, 2). Frozen neighbor at (0,0)=0 along axis 0 only.
	// invDxSquared = (1, 0.25). a=1, b=0, c=-1 -> x=1.
	size := grid.Size{3, 3}
	dist := grid.NewDistanceGrid(size)
	state := grid.NewStateGrid(size)
	dist.Set(grid.Idx{0, 0}, 0)
	state.Set(grid.Idx{0, 0}, grid.Frozen)

	s := eikonal.NewSolver([]float64{1, 2}, 1)
	offsets := grid.Neighborhood(2)
	got := s.Solve(grid.Idx{1, 0}, offsets, dist, state)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("Solve() = %v; want 1", got)
	}
}

func TestSolveSpeedScaling(t *testing.T) {
	size := grid.Size{3}
	dist := grid.NewDistanceGrid(size)
	state := grid.NewStateGrid(size)
	dist.Set(grid.Idx{0}, 0)
	state.Set(grid.Idx{0}, grid.Frozen)
	offsets := grid.Neighborhood(1)

	s1 := eikonal.NewSolver([]float64{1}, 1)
	got1 := s1.Solve(grid.Idx{1}, offsets, dist, state)

	s2 := eikonal.NewSolver([]float64{1}, 2)
	got2 := s2.Solve(grid.Idx{1}, offsets, dist, state)

	if math.Abs(got1/2-got2) > 1e-9 {
		t.Errorf("doubling speed did not halve distance: got1=%v got2=%v", got1, got2)
	}
}
