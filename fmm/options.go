package fmm

import "github.com/ccurtis0/fast-marching-method/grid"

// Option configures an optional, non-algorithmic behavior of a driver call.
type Option func(*options)

type options struct {
	onFreeze func(idx grid.Idx, distance float64)
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, apply := range opts {
		apply(o)
	}
	return o
}

// WithOnFreeze registers a callback invoked once per cell, in extraction
// order, immediately after the Marcher freezes it. Seed cells are frozen
// at initialization, not by the Marcher, and are not reported. The callback must not
// mutate the grids it is passed indices into; it exists purely for progress
// reporting (see cmd/fmmd's websocket progress feed) and never influences
// the algorithm's outcome.
func WithOnFreeze(fn func(idx grid.Idx, distance float64)) Option {
	return func(o *options) {
		o.onFreeze = fn
	}
}
