package fmm

import "github.com/ccurtis0/fast-marching-method/grid"

// sign is the seed-time multiplier applied to a seed distance before it is
// written into the distance grid: signInside freezes seeds negative,
// signOutside freezes them positive.
type sign float64

const (
	signInside  sign = -1
	signOutside sign = 1
)

// predicate gates which axis-aligned offsets are expanded from a seed at
// FrontInitializer time. It is never consulted once marching begins.
type predicate func(normal []float64, offset grid.Idx) bool

// insidePredicate propagates opposite to the outward normal: P(n,o) =
// ((-n)·o) >= 0.
func insidePredicate(normal []float64, offset grid.Idx) bool {
	return dot(normal, offset) <= 0
}

// outsidePredicate propagates along the outward normal: P(n,o) = (n·o) >= 0.
func outsidePredicate(normal []float64, offset grid.Idx) bool {
	return dot(normal, offset) >= 0
}

// dot computes the inner product of a float normal and an integer
// axis-aligned offset.
func dot(normal []float64, offset grid.Idx) float64 {
	sum := 0.0
	for j, v := range offset {
		sum += normal[j] * float64(v)
	}
	return sum
}
