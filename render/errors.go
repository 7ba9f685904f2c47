package render

import "errors"

var (
	// ErrDimensionMismatch indicates size is not two-dimensional, or values'
	// length does not equal Prod(size).
	ErrDimensionMismatch = errors.New("render: size must be 2-D and values must have length Prod(size)")

	// ErrInvalidCellPixels indicates cellPixels < 1.
	ErrInvalidCellPixels = errors.New("render: cellPixels must be positive")
)
