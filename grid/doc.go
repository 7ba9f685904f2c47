// Package grid provides the N-dimensional Cartesian grid primitives shared
// by the Fast Marching Method engine: row-major linear indexing, bounds
// membership, axis-aligned neighbor offsets, and the two flavors of
// cell-valued grid (distance and state) that the engine mutates.
//
// Grid is deliberately dumb: it does no bounds checking on cell access and
// holds no algorithmic state. Callers test Inside(idx, size) before
// touching a cell; every package further up the stack (heap, eikonal, fmm)
// is built on top of these primitives.
package grid
