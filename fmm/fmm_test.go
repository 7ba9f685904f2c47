package fmm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ccurtis0/fast-marching-method/fmm"
	"github.com/ccurtis0/fast-marching-method/grid"
)

func TestUnsignedDistanceOneDimensionalSingleSeed(t *testing.T) {
	size := grid.Size{7}
	dx := []float64{1}
	seeds := []grid.Idx{{3}}
	distances := []float64{0}
	normals := [][]float64{{1}}

	got, err := fmm.UnsignedDistance(size, dx, 1, seeds, distances, normals)
	require.NoError(t, err)

	want := []float64{3, 2, 1, 0, 1, 2, 3}
	for i, w := range want {
		require.InDelta(t, w, got[i], 1e-9, "index %d", i)
	}
}

func TestSignedDistanceOneDimensional(t *testing.T) {
	size := grid.Size{7}
	dx := []float64{1}
	seeds := []grid.Idx{{3}}
	distances := []float64{0}
	normals := [][]float64{{1}}

	got, err := fmm.SignedDistance(size, dx, 1, seeds, distances, normals)
	require.NoError(t, err)

	want := []float64{-3, -2, -1, 0, 1, 2, 3}
	for i, w := range want {
		require.InDelta(t, w, got[i], 1e-9, "index %d", i)
	}
}

func TestUnsignedDistanceTwoDimensionalCornerDiagonal(t *testing.T) {
	size := grid.Size{5, 5}
	dx := []float64{1, 1}
	seeds := []grid.Idx{{0, 0}}
	distances := []float64{0}
	normals := [][]float64{{1, 1}}

	got, err := fmm.UnsignedDistance(size, dx, 1, seeds, distances, normals)
	require.NoError(t, err)

	strides := grid.Strides(size)
	corner := got[grid.Linear(grid.Idx{4, 4}, strides)]
	want := 4 * math.Sqrt2
	require.InEpsilon(t, want, corner, 0.05, "corner distance")
}

func TestUnsignedDistanceAnisotropicSpacing(t *testing.T) {
	size := grid.Size{5, 1}
	dx := []float64{2, 1}
	seeds := []grid.Idx{{2, 0}}
	distances := []float64{0}
	normals := [][]float64{{1, 0}}

	got, err := fmm.UnsignedDistance(size, dx, 1, seeds, distances, normals)
	require.NoError(t, err)

	strides := grid.Strides(size)
	d := got[grid.Linear(grid.Idx{0, 0}, strides)]
	require.InDelta(t, 4.0, d, 1e-9, "distance two cells away at dx=2")
}

func TestUnsignedDistanceSpeedScaling(t *testing.T) {
	size := grid.Size{7}
	dx := []float64{1}
	seeds := []grid.Idx{{3}}
	distances := []float64{0}
	normals := [][]float64{{1}}

	slow, err := fmm.UnsignedDistance(size, dx, 1, seeds, distances, normals)
	require.NoError(t, err)
	fast, err := fmm.UnsignedDistance(size, dx, 2, seeds, distances, normals)
	require.NoError(t, err)

	for i := range slow {
		require.InDelta(t, slow[i]/2, fast[i], 1e-9, "index %d", i)
	}
}

func TestUnsignedDistanceNonNegative(t *testing.T) {
	size := grid.Size{6, 6}
	dx := []float64{1, 1}
	seeds := []grid.Idx{{2, 3}}
	distances := []float64{0}
	normals := [][]float64{{0, 1}}

	got, err := fmm.UnsignedDistance(size, dx, 1, seeds, distances, normals)
	require.NoError(t, err)

	for i, v := range got {
		if math.IsInf(v, 1) {
			continue
		}
		require.GreaterOrEqualf(t, v, 0.0, "index %d", i)
	}
}

func TestUnsignedDistanceTranslationInvariance(t *testing.T) {
	dx := []float64{1, 1}
	normals := [][]float64{{1, 0}}

	base, err := fmm.UnsignedDistance(grid.Size{6, 6}, dx, 1, []grid.Idx{{2, 2}}, []float64{0}, normals)
	require.NoError(t, err)
	shifted, err := fmm.UnsignedDistance(grid.Size{8, 8}, dx, 1, []grid.Idx{{4, 4}}, []float64{0}, normals)
	require.NoError(t, err)

	baseStrides := grid.Strides(grid.Size{6, 6})
	shiftStrides := grid.Strides(grid.Size{8, 8})
	for i0 := 0; i0 < 6; i0++ {
		for i1 := 0; i1 < 6; i1++ {
			a := base[grid.Linear(grid.Idx{i0, i1}, baseStrides)]
			b := shifted[grid.Linear(grid.Idx{i0 + 2, i1 + 2}, shiftStrides)]
			require.InDeltaf(t, a, b, 1e-9, "(%d,%d)", i0, i1)
		}
	}
}

func TestUnsignedDistanceInvalidSpeed(t *testing.T) {
	_, err := fmm.UnsignedDistance(grid.Size{3}, []float64{1}, 0, []grid.Idx{{1}}, []float64{0}, [][]float64{{1}})
	require.ErrorIs(t, err, fmm.ErrInvalidSpeed)
}

func TestUnsignedDistanceInvalidIndex(t *testing.T) {
	_, err := fmm.UnsignedDistance(grid.Size{3}, []float64{1}, 1, []grid.Idx{{5}}, []float64{0}, [][]float64{{1}})
	require.ErrorIs(t, err, fmm.ErrInvalidIndex)
}

func TestSignedDistanceInvalidNormal(t *testing.T) {
	_, err := fmm.SignedDistance(grid.Size{3}, []float64{1}, 1, []grid.Idx{{1}}, []float64{0}, [][]float64{{0.1}})
	require.ErrorIs(t, err, fmm.ErrInvalidNormal)
}

func TestUnsignedDistanceSizeMismatch(t *testing.T) {
	_, err := fmm.UnsignedDistance(grid.Size{3}, []float64{1}, 1, []grid.Idx{{1}, {2}}, []float64{0}, [][]float64{{1}})
	require.ErrorIs(t, err, fmm.ErrSizeMismatch)
}

func TestUnsignedDistanceOnFreezeCallback(t *testing.T) {
	size := grid.Size{5}
	var freezeCount int
	_, err := fmm.UnsignedDistance(size, []float64{1}, 1, []grid.Idx{{2}}, []float64{0}, [][]float64{{1}},
		fmm.WithOnFreeze(func(idx grid.Idx, d float64) { freezeCount++ }))
	require.NoError(t, err)
	// The seed is frozen at initialization, not by the Marcher, so only the
	// remaining cells are reported.
	require.Equal(t, size.Product()-1, freezeCount)
}

func TestUnsignedDistanceSeedFidelity(t *testing.T) {
	size := grid.Size{5}
	seeds := []grid.Idx{{1}, {3}}
	distances := []float64{0.25, 0.75}
	normals := [][]float64{{-1}, {1}}

	got, err := fmm.UnsignedDistance(size, []float64{1}, 1, seeds, distances, normals)
	require.NoError(t, err)

	strides := grid.Strides(size)
	require.InDelta(t, 0.25, got[grid.Linear(grid.Idx{1}, strides)], 1e-9, "seed 0 distance")
	require.InDelta(t, 0.75, got[grid.Linear(grid.Idx{3}, strides)], 1e-9, "seed 1 distance")
}
