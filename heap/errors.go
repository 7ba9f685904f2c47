package heap

import "errors"

// Sentinel errors for NarrowBandHeap contract violations. These indicate
// programming bugs in the caller (the Marcher/FrontInitializer), not
// invalid user input, and should generally abort rather than be handled.
var (
	// ErrDuplicateIndex is returned by Insert when the index is already
	// present in the heap.
	ErrDuplicateIndex = errors.New("heap: index already present")

	// ErrNotFound is returned by DecreaseDistance/IncreaseDistance when the
	// index is not present in the heap.
	ErrNotFound = errors.New("heap: index not found")

	// ErrNotDecreasing is returned by DecreaseDistance when the proposed
	// distance is not strictly less than the current one.
	ErrNotDecreasing = errors.New("heap: proposed distance does not decrease")

	// ErrNotIncreasing is returned by IncreaseDistance when the proposed
	// distance is not strictly greater than the current one.
	ErrNotIncreasing = errors.New("heap: proposed distance does not increase")

	// ErrHeapEmpty is returned by Pop when the heap has no entries.
	ErrHeapEmpty = errors.New("heap: empty")
)
