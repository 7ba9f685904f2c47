// Package render rasterizes a two-dimensional fmm distance field into a PNG
// image: each cell's value is mapped through a Palette into a color, and
// the zero level set is picked out with a one-cell-wide anti-aliased contour
// using the same signed-distance-to-coverage smoothstep technique used for
// vector shape rendering.
package render
