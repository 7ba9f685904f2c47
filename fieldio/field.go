package fieldio

import (
	"math"
	"time"

	"github.com/ccurtis0/fast-marching-method/grid"
)

// Field is the in-memory counterpart of an encoded field: the grid shape
// it was computed on, the per-axis spacing used, and the flat distance
// buffer itself (unsigned or signed, Signed disambiguates).
type Field struct {
	Size   grid.Size
	Dx     []float64
	Values []float64
	Signed bool
}

// Snapshot wraps a Field with the bookkeeping cmd/fmmd's in-memory field
// cache needs: a stable ID and a creation timestamp, independent of the
// field's own content.
type Snapshot struct {
	ID        string
	Field     Field
	CreatedAt time.Time
}

// NewSnapshot stamps f with id and the current time.
func NewSnapshot(id string, f Field) Snapshot {
	return Snapshot{ID: id, Field: f, CreatedAt: time.Now()}
}

// Reached reports, per cell in row-major order, whether the solve assigned
// it a finite distance. It agrees exactly with the bitmap Encode stores and
// FiniteCells decodes: cell i is finite iff Reached()[i] is true.
func (s Snapshot) Reached() []bool {
	reached := make([]bool, len(s.Field.Values))
	for i, v := range s.Field.Values {
		reached[i] = !math.IsInf(v, 1) && !math.IsInf(v, -1)
	}
	return reached
}

func finiteBits(values []float64) []uint32 {
	bits := make([]uint32, 0, len(values))
	for i, v := range values {
		if !math.IsInf(v, 1) && !math.IsInf(v, -1) {
			bits = append(bits, uint32(i))
		}
	}
	return bits
}
