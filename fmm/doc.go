// Package fmm orchestrates the Fast Marching Method on a regular
// N-dimensional Cartesian grid: it seeds the narrow band from a sparse set
// of frozen cells and their interface normals, marches the band to
// completion with an upwind Eikonal solver, and composes an inside sweep
// and an outside sweep into an unsigned or signed distance field.
//
// What:
//
//   - UnsignedDistance computes ‖x - interface‖ at every reachable cell.
//   - SignedDistance additionally orients the field: negative inside the
//     interface, positive outside, using the caller-supplied normals to
//     pick each sweep's propagation direction.
//
// Complexity: O(n log n) in the number of grid cells, dominated by the
// narrow-band heap's O(log n) insert/decrease-key.
//
// Errors (sentinel):
//
//   - ErrInvalidSize, ErrInvalidSpacing, ErrInvalidSpeed: malformed grid
//     parameters.
//   - ErrSizeMismatch, ErrInvalidIndex, ErrInvalidDistance, ErrInvalidNormal:
//     malformed seed data.
//   - ErrEmptyNarrowBand: the seeds left nothing to march.
//
// See also: github.com/ccurtis0/fast-marching-method/grid for the
// underlying N-D grid and neighbor primitives, and
// github.com/ccurtis0/fast-marching-method/heap and
// .../eikonal for the narrow-band priority queue and the upwind solver
// this package composes.
package fmm
