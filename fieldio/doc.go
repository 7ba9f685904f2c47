// Package fieldio serializes fmm distance fields to a compact binary
// format: a small header (grid size, spacing), a roaring bitmap marking
// which cells are finite (reached by either sweep) for sparse filtering,
// and the flat float64 buffer itself, zstd-compressed. BatchEncode fans
// encoding of several fields out across goroutines.
package fieldio
