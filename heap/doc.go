// Package heap implements the narrow-band priority queue at the heart of
// the Fast Marching Method: a binary min-heap of (distance, grid index)
// pairs with O(log n) insert, pop-minimum, and decrease/increase-key by
// index.
//
// The heap maintains two invariants after every public operation:
//
//   - the backing array satisfies the min-heap relation on distance;
//   - an auxiliary index -> array-position map agrees with the array.
//
// A grid index appears at most once in the heap. The standard library's
// container/heap already gives us Push/Pop/Fix with O(log n) behavior; we
// supply the Len/Less/Swap machinery and keep the position map in sync on
// every Swap so that Fix can be driven directly by index instead of by a
// previously-known slice position.
package heap
