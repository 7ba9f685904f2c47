package grid

import "math"

// Size is an N-tuple of positive cell counts, one per axis.
type Size []int

// Idx is an N-tuple of signed cell coordinates. Components may be negative
// or out of range; callers test Inside before dereferencing a cell.
type Idx []int

// Len returns the number of dimensions N.
func (s Size) Len() int { return len(s) }

// Product returns the total cell count Prod(s[i]).
// Complexity: O(N).
func (s Size) Product() int {
	n := 1
	for _, v := range s {
		n *= v
	}
	return n
}

// Clone returns an independent copy of idx.
func (idx Idx) Clone() Idx {
	out := make(Idx, len(idx))
	copy(out, idx)
	return out
}

// Strides precomputes row-major strides for size: stride[0]=1,
// stride[j] = stride[j-1] * size[j-1].
// Complexity: O(N).
func Strides(size Size) []int {
	strides := make([]int, len(size))
	if len(size) == 0 {
		return strides
	}
	strides[0] = 1
	for j := 1; j < len(size); j++ {
		strides[j] = strides[j-1] * size[j-1]
	}
	return strides
}

// Inside reports whether idx lies within [0, size[j]) for every axis j.
// Complexity: O(N).
func Inside(idx Idx, size Size) bool {
	if len(idx) != len(size) {
		return false
	}
	for j, v := range idx {
		if v < 0 || v >= size[j] {
			return false
		}
	}
	return true
}

// Linear computes the row-major linear index k = Sum(idx[j] * strides[j]).
// No bounds checking is performed; callers must have already confirmed
// Inside(idx, size).
// Complexity: O(N).
func Linear(idx Idx, strides []int) int {
	k := 0
	for j, v := range idx {
		k += v * strides[j]
	}
	return k
}

// FromLinear reconstructs the Idx corresponding to a row-major linear index
// k under the given size. It is the inverse of Linear(idx, Strides(size)).
// Complexity: O(N).
func FromLinear(k int, size Size) Idx {
	idx := make(Idx, len(size))
	for j := 0; j < len(size); j++ {
		idx[j] = k % size[j]
		k /= size[j]
	}
	return idx
}

// Add returns idx + offset component-wise.
func Add(idx, offset Idx) Idx {
	out := make(Idx, len(idx))
	for j := range idx {
		out[j] = idx[j] + offset[j]
	}
	return out
}

// Neighborhood returns the fixed ordered set of 2N axis-aligned unit
// offsets for an N-dimensional grid: for each axis i, +e_i at pair index
// 2i and -e_i at pair index 2i+1. The Eikonal solver groups neighbors by
// axis via this pairing.
// Complexity: O(N).
func Neighborhood(n int) []Idx {
	offsets := make([]Idx, 2*n)
	for i := 0; i < n; i++ {
		plus := make(Idx, n)
		minus := make(Idx, n)
		plus[i] = 1
		minus[i] = -1
		offsets[2*i] = plus
		offsets[2*i+1] = minus
	}
	return offsets
}

// DistanceGrid is a flat, cell-valued floating point grid. A fresh grid is
// filled with +Inf, the sentinel meaning "not yet reached". A cell's value
// is meaningful once the owning StateGrid marks it NarrowBand, and final
// once Frozen.
type DistanceGrid struct {
	size    Size
	strides []int
	cells   []float64
}

// NewDistanceGrid allocates a DistanceGrid of the given size, every cell
// initialized to +Inf.
// Complexity: O(Prod(size)).
func NewDistanceGrid(size Size) *DistanceGrid {
	cells := make([]float64, size.Product())
	inf := math.Inf(1)
	for i := range cells {
		cells[i] = inf
	}
	return &DistanceGrid{size: size, strides: Strides(size), cells: cells}
}

// Size returns the grid's dimensions.
func (g *DistanceGrid) Size() Size { return g.size }

// At returns the value at idx. Caller must ensure Inside(idx, g.Size()).
func (g *DistanceGrid) At(idx Idx) float64 { return g.cells[Linear(idx, g.strides)] }

// AtLinear returns the value at a precomputed linear index.
func (g *DistanceGrid) AtLinear(k int) float64 { return g.cells[k] }

// Set writes v at idx. Caller must ensure Inside(idx, g.Size()).
func (g *DistanceGrid) Set(idx Idx, v float64) { g.cells[Linear(idx, g.strides)] = v }

// SetLinear writes v at a precomputed linear index.
func (g *DistanceGrid) SetLinear(k int, v float64) { g.cells[k] = v }

// Linear returns the row-major linear index of idx under this grid's
// strides.
func (g *DistanceGrid) Linear(idx Idx) int { return Linear(idx, g.strides) }

// Buffer returns the flat, row-major backing buffer. Callers must not
// mutate its length; values may be read or overwritten in place.
func (g *DistanceGrid) Buffer() []float64 { return g.cells }

// CellState is the Far/NarrowBand/Frozen label of a grid cell.
type CellState int

const (
	// Far is the initial state: the cell's distance is not yet meaningful.
	Far CellState = iota
	// NarrowBand marks a cell whose trial distance has been computed and
	// may still be relaxed downward.
	NarrowBand
	// Frozen marks a cell whose distance is final.
	Frozen
)

// String renders a CellState for diagnostics.
func (s CellState) String() string {
	switch s {
	case Far:
		return "Far"
	case NarrowBand:
		return "NarrowBand"
	case Frozen:
		return "Frozen"
	default:
		return "Unknown"
	}
}

// StateGrid is a flat, cell-valued grid of CellState. A fresh grid has
// every cell Far.
type StateGrid struct {
	size    Size
	strides []int
	cells   []CellState
}

// NewStateGrid allocates a StateGrid of the given size, every cell Far.
// Complexity: O(Prod(size)).
func NewStateGrid(size Size) *StateGrid {
	return &StateGrid{size: size, strides: Strides(size), cells: make([]CellState, size.Product())}
}

// Size returns the grid's dimensions.
func (g *StateGrid) Size() Size { return g.size }

// At returns the state at idx. Caller must ensure Inside(idx, g.Size()).
func (g *StateGrid) At(idx Idx) CellState { return g.cells[Linear(idx, g.strides)] }

// AtLinear returns the state at a precomputed linear index.
func (g *StateGrid) AtLinear(k int) CellState { return g.cells[k] }

// Set writes s at idx. Caller must ensure Inside(idx, g.Size()).
func (g *StateGrid) Set(idx Idx, s CellState) { g.cells[Linear(idx, g.strides)] = s }

// SetLinear writes s at a precomputed linear index.
func (g *StateGrid) SetLinear(k int, s CellState) { g.cells[k] = s }

// Linear returns the row-major linear index of idx under this grid's
// strides.
func (g *StateGrid) Linear(idx Idx) int { return Linear(idx, g.strides) }
