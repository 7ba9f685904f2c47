package fmm

import (
	"github.com/ccurtis0/fast-marching-method/eikonal"
	"github.com/ccurtis0/fast-marching-method/grid"
	narrowband "github.com/ccurtis0/fast-marching-method/heap"
)

// initializeFront freezes every seed at m*seedDistances[i] and, for each
// seed, expands along the offsets the predicate admits: Far neighbors are
// solved and enqueued, NarrowBand neighbors are relaxed if the new estimate
// is smaller, Frozen neighbors are left untouched.
func initializeFront(
	solver *eikonal.Solver,
	offsets []grid.Idx,
	dist *grid.DistanceGrid,
	state *grid.StateGrid,
	band *narrowband.NarrowBandHeap,
	seedIndices []grid.Idx,
	seedDistances []float64,
	seedNormals [][]float64,
	m sign,
	pred predicate,
) error {
	for i, idx := range seedIndices {
		dist.Set(idx, float64(m)*seedDistances[i])
		state.Set(idx, grid.Frozen)
	}

	for i, idx := range seedIndices {
		normal := seedNormals[i]
		for _, o := range offsets {
			if !pred(normal, o) {
				continue
			}
			n := grid.Add(idx, o)
			if !grid.Inside(n, dist.Size()) {
				continue
			}
			k := dist.Linear(n)
			switch state.AtLinear(k) {
			case grid.Far:
				d := solver.Solve(n, offsets, dist, state)
				dist.SetLinear(k, d)
				state.SetLinear(k, grid.NarrowBand)
				if err := band.Insert(d, k); err != nil {
					return err
				}
			case grid.NarrowBand:
				d := solver.Solve(n, offsets, dist, state)
				if d < dist.AtLinear(k) {
					if err := band.DecreaseDistance(k, d); err != nil {
						return err
					}
					dist.SetLinear(k, d)
				}
			case grid.Frozen:
				// Already final; ignore.
			}
		}
	}

	if band.Empty() {
		return ErrEmptyNarrowBand
	}
	return nil
}
