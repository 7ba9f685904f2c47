package fmm

import (
	"github.com/ccurtis0/fast-marching-method/eikonal"
	"github.com/ccurtis0/fast-marching-method/grid"
	narrowband "github.com/ccurtis0/fast-marching-method/heap"
)

// march drains band to completion: repeatedly pop the minimum, freeze it,
// and relax its non-frozen axis-neighbors. No predicate applies once
// marching starts; every offset is eligible.
//
// By the time a cell is frozen its distance can only be equal to or
// smaller than any distance later computed for its neighbors, since the
// solver only ever reads frozen neighbors — so extraction order is
// non-decreasing and a frozen cell is never revisited.
func march(
	solver *eikonal.Solver,
	offsets []grid.Idx,
	dist *grid.DistanceGrid,
	state *grid.StateGrid,
	band *narrowband.NarrowBandHeap,
	onFreeze func(idx grid.Idx, distance float64),
) error {
	for !band.Empty() {
		d, k, err := band.Pop()
		if err != nil {
			return err
		}
		state.SetLinear(k, grid.Frozen)
		dist.SetLinear(k, d)
		if onFreeze != nil {
			onFreeze(grid.FromLinear(k, dist.Size()), d)
		}

		idx := grid.FromLinear(k, dist.Size())
		for _, o := range offsets {
			n := grid.Add(idx, o)
			if !grid.Inside(n, dist.Size()) {
				continue
			}
			nk := dist.Linear(n)
			switch state.AtLinear(nk) {
			case grid.Far:
				nd := solver.Solve(n, offsets, dist, state)
				dist.SetLinear(nk, nd)
				state.SetLinear(nk, grid.NarrowBand)
				if err := band.Insert(nd, nk); err != nil {
					return err
				}
			case grid.NarrowBand:
				nd := solver.Solve(n, offsets, dist, state)
				if nd < dist.AtLinear(nk) {
					if err := band.DecreaseDistance(nk, nd); err != nil {
						return err
					}
					dist.SetLinear(nk, nd)
				}
			case grid.Frozen:
				// Terminal; never revisited.
			}
		}
	}
	return nil
}
