package fmm

import (
	"math"

	"github.com/ccurtis0/fast-marching-method/grid"
)

// minNormalSquaredMagnitude is the sanity bound ‖n‖² >= 0.25 required of
// seed normals for SignedDistance, ensuring the normal is directional
// enough to pick a definite inside/outside sweep.
const minNormalSquaredMagnitude = 0.25

// validateInputs performs every up-front check shared by UnsignedDistance
// and SignedDistance. requireNormals additionally checks the ‖n‖² >= 0.25
// bound, which only the signed path needs.
func validateInputs(
	size grid.Size,
	dx []float64,
	speed float64,
	seedIndices []grid.Idx,
	seedDistances []float64,
	seedNormals [][]float64,
	requireNormals bool,
) error {
	for _, s := range size {
		if s < 1 {
			return ErrInvalidSize
		}
	}
	if len(dx) != len(size) {
		return ErrInvalidSize
	}
	for _, d := range dx {
		if d <= 0 {
			return ErrInvalidSpacing
		}
	}
	if speed <= 0 {
		return ErrInvalidSpeed
	}
	if len(seedIndices) != len(seedDistances) || len(seedIndices) != len(seedNormals) {
		return ErrSizeMismatch
	}
	for i, idx := range seedIndices {
		if !grid.Inside(idx, size) {
			return ErrInvalidIndex
		}
		if math.IsNaN(seedDistances[i]) {
			return ErrInvalidDistance
		}
		if requireNormals {
			if sq := squaredMagnitude(seedNormals[i]); sq < minNormalSquaredMagnitude {
				return ErrInvalidNormal
			}
		}
	}
	return nil
}

func squaredMagnitude(v []float64) float64 {
	sum := 0.0
	for _, c := range v {
		sum += c * c
	}
	return sum
}

