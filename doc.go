// Package fastmarchingmethod is an N-dimensional Fast Marching Method
// engine for computing unsigned and signed Eikonal distance fields.
//
// What's here:
//
//	grid/    — N-D Cartesian indexing, Size/Idx, DistanceGrid, StateGrid
//	heap/    — binary min-heap addressed by grid linear index
//	eikonal/ — the upwind quadratic Eikonal solver
//	fmm/     — orchestration: front initialization, marching, the public
//	           UnsignedDistance / SignedDistance entry points
//	sdfseed/ — derives seed cells, distances and normals from an
//	           github.com/deadsy/sdfx signed distance field
//	render/  — anti-aliased PNG rasterization of 2-D fields
//	fieldio/ — compressed binary field encoding for storage and transport
//	cmd/fmmd — an HTTP service that computes fields on demand and streams
//	           their progress over a WebSocket
//
// A minimal computation looks like:
//
//	values, err := fmm.UnsignedDistance(
//	    grid.Size{64, 64},
//	    []float64{1, 1},
//	    1.0,
//	    seedIndices, seedDistances, seedNormals,
//	)
//
// See SPEC_FULL.md and DESIGN.md at the repository root for the full
// module map and the design decisions behind it.
package fastmarchingmethod
