package sdfseed

import (
	"math"

	"github.com/ccurtis0/fast-marching-method/grid"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// gradientStep is the central-difference step, as a fraction of the local
// cell spacing, used to estimate the SDF's gradient at an interface cell.
const gradientStep = 0.5

// minGradientNorm is the smallest central-difference gradient magnitude
// BuildSeeds will normalize into a unit normal.
const minGradientNorm = 1e-6

// BuildSeeds samples s on a size-shaped grid with spacing dx anchored at
// origin (world coordinates of cell index {0,0,0}), and returns the seed
// triple (indices, distances, normals) fmm.UnsignedDistance and
// fmm.SignedDistance expect. A cell is a seed candidate if s changes sign
// across one of its axis-neighbors, or if |s| at the cell is within half a
// cell diagonal of zero (the surface passes close enough to the cell
// center that treating it as a seed is more accurate than waiting for the
// march to reach it). Each seed's normal is the normalized
// central-difference gradient of s at the cell center.
// Complexity: O(Prod(size)) solid evaluations.
func BuildSeeds(s sdf.SDF3, size grid.Size, dx []float64, origin []float64) ([]grid.Idx, []float64, [][]float64, error) {
	if s == nil {
		return nil, nil, nil, ErrNilSolid
	}
	if len(size) != 3 || len(dx) != 3 || len(origin) != 3 {
		return nil, nil, nil, ErrDimensionMismatch
	}
	for _, v := range size {
		if v < 1 {
			return nil, nil, nil, ErrInvalidSize
		}
	}
	for _, d := range dx {
		if d <= 0 {
			return nil, nil, nil, ErrInvalidSpacing
		}
	}

	n := size.Product()
	values := make([]float64, n)
	for k := 0; k < n; k++ {
		idx := grid.FromLinear(k, size)
		values[k] = s.Evaluate(worldPoint(idx, dx, origin))
	}

	halfDiagonal := 0.5 * math.Sqrt(dx[0]*dx[0]+dx[1]*dx[1]+dx[2]*dx[2])
	strides := grid.Strides(size)
	candidates := make(map[int]bool)
	axes := []grid.Idx{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for k := 0; k < n; k++ {
		if math.Abs(values[k]) <= halfDiagonal {
			candidates[k] = true
		}
		idx := grid.FromLinear(k, size)
		for _, off := range axes {
			nb := grid.Add(idx, off)
			if !grid.Inside(nb, size) {
				continue
			}
			nk := grid.Linear(nb, strides)
			if (values[k] < 0) != (values[nk] < 0) {
				candidates[k] = true
				candidates[nk] = true
			}
		}
	}
	if len(candidates) == 0 {
		return nil, nil, nil, ErrNoSurfaceCrossing
	}

	indices := make([]grid.Idx, 0, len(candidates))
	distances := make([]float64, 0, len(candidates))
	normals := make([][]float64, 0, len(candidates))
	for k := range candidates {
		idx := grid.FromLinear(k, size)
		normal, err := gradient(s, idx, dx, origin)
		if err != nil {
			return nil, nil, nil, err
		}
		indices = append(indices, idx)
		distances = append(distances, values[k])
		normals = append(normals, normal)
	}
	return indices, distances, normals, nil
}

func worldPoint(idx grid.Idx, dx, origin []float64) v3.Vec {
	return v3.Vec{
		X: origin[0] + float64(idx[0])*dx[0],
		Y: origin[1] + float64(idx[1])*dx[1],
		Z: origin[2] + float64(idx[2])*dx[2],
	}
}

func gradient(s sdf.SDF3, idx grid.Idx, dx, origin []float64) ([]float64, error) {
	p := worldPoint(idx, dx, origin)
	g := make([]float64, 3)
	h := [3]float64{gradientStep * dx[0], gradientStep * dx[1], gradientStep * dx[2]}

	plusX := v3.Vec{X: p.X + h[0], Y: p.Y, Z: p.Z}
	minusX := v3.Vec{X: p.X - h[0], Y: p.Y, Z: p.Z}
	plusY := v3.Vec{X: p.X, Y: p.Y + h[1], Z: p.Z}
	minusY := v3.Vec{X: p.X, Y: p.Y - h[1], Z: p.Z}
	plusZ := v3.Vec{X: p.X, Y: p.Y, Z: p.Z + h[2]}
	minusZ := v3.Vec{X: p.X, Y: p.Y, Z: p.Z - h[2]}

	g[0] = (s.Evaluate(plusX) - s.Evaluate(minusX)) / (2 * h[0])
	g[1] = (s.Evaluate(plusY) - s.Evaluate(minusY)) / (2 * h[1])
	g[2] = (s.Evaluate(plusZ) - s.Evaluate(minusZ)) / (2 * h[2])

	mag := math.Sqrt(g[0]*g[0] + g[1]*g[1] + g[2]*g[2])
	if mag < minGradientNorm {
		return nil, ErrDegenerateGradient
	}
	for i := range g {
		g[i] /= mag
	}
	return g, nil
}
