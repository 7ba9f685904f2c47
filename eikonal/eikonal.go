package eikonal

import (
	"log"
	"math"

	"github.com/ccurtis0/fast-marching-method/grid"
)

// quadraticEps is the tolerance used throughout solveQuadratic to decide
// whether a coefficient or discriminant is effectively zero. Tune if
// porting to float32.
const quadraticEps = 1e-9

// debugAssertions gates the soft upwind-causality check in Solve: a
// correct upwind solve never produces a value smaller than the largest
// frozen neighbor it was derived from. Violating this doesn't corrupt the
// algorithm's output (the quadratic's larger root is still returned), but
// it signals corrupted seed or caller data worth surfacing in logs rather
// than silently ignoring.
var debugAssertions = true

// Solver computes the trial Eikonal distance at a cell from its frozen
// axis-neighbors. It is stateless aside from precomputed reciprocal-squared
// spacings and reciprocal-squared speed, and is safe to share read-only
// across an inside and an outside sweep.
type Solver struct {
	invDxSquared []float64
	invFSquared  float64
}

// NewSolver builds a Solver for the given per-axis spacing dx and uniform,
// isotropic speed. Callers must have already validated dx[i] > 0 and
// speed > 0.
func NewSolver(dx []float64, speed float64) *Solver {
	invDxSquared := make([]float64, len(dx))
	for i, d := range dx {
		invDxSquared[i] = 1 / (d * d)
	}
	return &Solver{invDxSquared: invDxSquared, invFSquared: 1 / (speed * speed)}
}

// Solve assembles the discrete upwind Eikonal equation at idx from its
// frozen axis-neighbors (selected via offsets, grouped in +e_i/-e_i pairs)
// and returns the larger real root of the resulting quadratic. Returns NaN
// if the cell has no frozen neighbor along any axis, or if the quadratic
// has no real solution; callers relaxing a cell out of the narrow band
// must never see NaN in practice, since every such cell was reached via at
// least one frozen neighbor.
// Complexity: O(N).
func (s *Solver) Solve(idx grid.Idx, offsets []grid.Idx, dist *grid.DistanceGrid, state *grid.StateGrid) float64 {
	size := dist.Size()

	// (c, b, a) coefficients of a*x^2 + b*x + c = 0.
	c := -s.invFSquared
	b := 0.0
	a := 0.0

	maxFrozenUsed := math.Inf(-1)
	n := len(idx)
	for i := 0; i < n; i++ {
		minFrozen := math.Inf(1)
		for _, off := range [2]grid.Idx{offsets[2*i], offsets[2*i+1]} {
			neighbor := grid.Add(idx, off)
			if !grid.Inside(neighbor, size) {
				continue
			}
			if state.At(neighbor) != grid.Frozen {
				continue
			}
			if u := dist.At(neighbor); u < minFrozen {
				minFrozen = u
			}
		}
		if math.IsInf(minFrozen, 1) {
			continue
		}
		c += minFrozen * minFrozen * s.invDxSquared[i]
		b += -2 * minFrozen * s.invDxSquared[i]
		a += s.invDxSquared[i]
		if minFrozen > maxFrozenUsed {
			maxFrozenUsed = minFrozen
		}
	}

	r0, r1 := solveQuadratic(c, b, a)
	result := r0
	if !math.IsNaN(r1) {
		result = math.Max(r0, r1)
	}
	if debugAssertions && !math.IsInf(maxFrozenUsed, -1) && result < maxFrozenUsed-quadraticEps {
		log.Printf("eikonal: non-upwind solve at %v: result %v < max frozen neighbor %v", idx, result, maxFrozenUsed)
	}
	return result
}

// solveQuadratic solves a*x^2 + b*x + c = 0 for real roots, applying the
// sign-stable formulation to avoid catastrophic cancellation. The first
// return value is the (only, or larger) real root; the second is NaN when
// only one root exists. Both are NaN when no real root exists.
func solveQuadratic(c, b, a float64) (float64, float64) {
	nan := math.NaN()

	if math.Abs(a) < quadraticEps {
		if math.Abs(b) < quadraticEps {
			return nan, nan
		}
		// bx + c = 0
		return -c / b, nan
	}

	if math.Abs(b) < quadraticEps {
		// ax^2 + c = 0
		radicand := -c / a
		if radicand < 0 {
			return nan, nan
		}
		r := math.Sqrt(radicand)
		return r, -r
	}

	discriminant := b*b - 4*a*c
	if discriminant <= quadraticEps {
		return nan, nan
	}
	sqrtDisc := math.Sqrt(discriminant)

	var r0 float64
	if b < 0 {
		r0 = (-b + sqrtDisc) / (2 * a)
	} else {
		r0 = (-b - sqrtDisc) / (2 * a)
	}
	r1 := c / (a * r0)
	return math.Max(r0, r1), math.Min(r0, r1)
}
