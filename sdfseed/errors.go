package sdfseed

import "errors"

var (
	// ErrNilSolid indicates a nil sdf.SDF3 was passed to BuildSeeds.
	ErrNilSolid = errors.New("sdfseed: solid must not be nil")

	// ErrInvalidSize indicates a grid size component < 1.
	ErrInvalidSize = errors.New("sdfseed: grid size must be positive in every dimension")

	// ErrInvalidSpacing indicates a spacing component <= 0.
	ErrInvalidSpacing = errors.New("sdfseed: dx must be positive in every dimension")

	// ErrDimensionMismatch indicates dx, origin, or size is not 3-dimensional.
	ErrDimensionMismatch = errors.New("sdfseed: size, dx and origin must each have length 3")

	// ErrNoSurfaceCrossing indicates the solid's zero level set never
	// crosses the grid: no cell straddles the surface.
	ErrNoSurfaceCrossing = errors.New("sdfseed: solid does not intersect the grid")

	// ErrDegenerateGradient indicates a seed candidate's central-difference
	// gradient has norm below 1e-6, too small to normalize into a unit
	// normal.
	ErrDegenerateGradient = errors.New("sdfseed: seed gradient too small to normalize")
)
