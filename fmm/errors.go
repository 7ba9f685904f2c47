package fmm

import "errors"

// Sentinel errors returned by UnsignedDistance and SignedDistance. All
// validation happens up-front; these are the only recoverable error
// outcomes of a driver call.
var (
	// ErrInvalidSize indicates a grid size component < 1, or a dx whose
	// length differs from the number of grid dimensions.
	ErrInvalidSize = errors.New("fmm: grid size must be positive in every dimension")

	// ErrInvalidSpacing indicates a spacing component <= 0.
	ErrInvalidSpacing = errors.New("fmm: dx must be positive in every dimension")

	// ErrInvalidSpeed indicates speed <= 0.
	ErrInvalidSpeed = errors.New("fmm: speed must be positive")

	// ErrSizeMismatch indicates the seed arrays have differing lengths.
	ErrSizeMismatch = errors.New("fmm: seed_indices, seed_distances and seed_normals must have equal length")

	// ErrInvalidIndex indicates a seed index lies outside the grid.
	ErrInvalidIndex = errors.New("fmm: seed index outside grid")

	// ErrInvalidDistance indicates a seed distance is NaN.
	ErrInvalidDistance = errors.New("fmm: seed distance is NaN")

	// ErrInvalidNormal indicates a seed normal with squared magnitude < 0.25,
	// required only for SignedDistance.
	ErrInvalidNormal = errors.New("fmm: seed normal magnitude too small for signed distance")

	// ErrEmptyNarrowBand indicates that, after seed expansion, no cell was
	// enqueued into the narrow band; there is nothing to march.
	ErrEmptyNarrowBand = errors.New("fmm: narrow band empty after seed expansion")
)
