package fmm

import (
	"math"

	"github.com/ccurtis0/fast-marching-method/eikonal"
	"github.com/ccurtis0/fast-marching-method/grid"
	narrowband "github.com/ccurtis0/fast-marching-method/heap"
)

// UnsignedDistance computes ‖x - interface‖ over the whole grid. Seed cells
// hold |seed_distances[i]| in the result, and the narrow band is grown outward in
// both half-spaces defined by each seed's normal: an inside sweep followed
// by an outside sweep sharing a single StateGrid, so previously frozen
// cells are never revisited by the second sweep.
func UnsignedDistance(
	size grid.Size,
	dx []float64,
	speed float64,
	seedIndices []grid.Idx,
	seedDistances []float64,
	seedNormals [][]float64,
	opts ...Option,
) ([]float64, error) {
	if err := validateInputs(size, dx, speed, seedIndices, seedDistances, seedNormals, false); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	offsets := grid.Neighborhood(size.Len())
	solver := eikonal.NewSolver(dx, speed)

	dist := grid.NewDistanceGrid(size)
	state := grid.NewStateGrid(size)

	insideBand := narrowband.New()
	if err := initializeFront(solver, offsets, dist, state, insideBand, seedIndices, seedDistances, seedNormals, signInside, insidePredicate); err != nil {
		return nil, err
	}
	if err := march(solver, offsets, dist, state, insideBand, o.onFreeze); err != nil {
		return nil, err
	}

	outsideBand := narrowband.New()
	if err := initializeFront(solver, offsets, dist, state, outsideBand, seedIndices, seedDistances, seedNormals, signOutside, outsidePredicate); err != nil {
		return nil, err
	}
	if err := march(solver, offsets, dist, state, outsideBand, o.onFreeze); err != nil {
		return nil, err
	}

	for i, idx := range seedIndices {
		dist.Set(idx, math.Abs(seedDistances[i]))
	}
	return dist.Buffer(), nil
}

// SignedDistance computes a signed distance field: negative inside the
// interface, positive outside. It runs the two sweeps into independent
// distance grids sharing one StateGrid, then composes them cell by cell —
// the equivalent, easier-to-reason-about alternative to UnsignedDistance's
// single shared distance grid (see the package's design notes on this
// choice).
func SignedDistance(
	size grid.Size,
	dx []float64,
	speed float64,
	seedIndices []grid.Idx,
	seedDistances []float64,
	seedNormals [][]float64,
	opts ...Option,
) ([]float64, error) {
	if err := validateInputs(size, dx, speed, seedIndices, seedDistances, seedNormals, true); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	offsets := grid.Neighborhood(size.Len())
	solver := eikonal.NewSolver(dx, speed)

	state := grid.NewStateGrid(size)

	insideDist := grid.NewDistanceGrid(size)
	insideBand := narrowband.New()
	if err := initializeFront(solver, offsets, insideDist, state, insideBand, seedIndices, seedDistances, seedNormals, signInside, insidePredicate); err != nil {
		return nil, err
	}
	if err := march(solver, offsets, insideDist, state, insideBand, o.onFreeze); err != nil {
		return nil, err
	}

	outsideDist := grid.NewDistanceGrid(size)
	outsideBand := narrowband.New()
	if err := initializeFront(solver, offsets, outsideDist, state, outsideBand, seedIndices, seedDistances, seedNormals, signOutside, outsidePredicate); err != nil {
		return nil, err
	}
	if err := march(solver, offsets, outsideDist, state, outsideBand, o.onFreeze); err != nil {
		return nil, err
	}

	out := make([]float64, size.Product())
	for k := range out {
		iv := insideDist.AtLinear(k)
		ov := outsideDist.AtLinear(k)
		switch {
		case iv < math.Inf(1):
			out[k] = -iv
		case ov < math.Inf(1):
			out[k] = ov
		default:
			out[k] = math.Inf(1)
		}
	}
	for i, idx := range seedIndices {
		out[grid.Linear(idx, grid.Strides(size))] = seedDistances[i]
	}
	return out, nil
}
