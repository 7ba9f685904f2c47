package render

import (
	"image"
	"image/color"

	"github.com/ccurtis0/fast-marching-method/grid"
	"github.com/fogleman/gg"
)

// RenderField rasterizes a 2-D field into an RGBA image: size[0]*cellPixels
// wide, size[1]*cellPixels tall. Each grid cell becomes a cellPixels square
// block colored by palette(values[k]); a thin anti-aliased contour is drawn
// over the zero level set by blending black in proportion to each block's
// proximity to a sign change on its four edges.
// Complexity: O(Prod(size) * cellPixels^2).
func RenderField(size grid.Size, values []float64, cellPixels int, palette Palette) (*image.RGBA, error) {
	if len(size) != 2 || len(values) != size.Product() {
		return nil, ErrDimensionMismatch
	}
	if cellPixels < 1 {
		return nil, ErrInvalidCellPixels
	}
	if palette == nil {
		palette = SignedPalette(1)
	}

	width := size[0] * cellPixels
	height := size[1] * cellPixels
	dc := gg.NewContext(width, height)

	strides := grid.Strides(size)
	for i1 := 0; i1 < size[1]; i1++ {
		for i0 := 0; i0 < size[0]; i0++ {
			k := grid.Linear(grid.Idx{i0, i1}, strides)
			v := values[k]
			r, g, b := palette(v)
			contour := cellContourCoverage(i0, i1, size, values, strides)
			r, g, b = blendBlack(r, g, b, contour)

			dc.SetColor(color.RGBA{
				R: toByte(r), G: toByte(g), B: toByte(b), A: 255,
			})
			dc.DrawRectangle(float64(i0*cellPixels), float64(i1*cellPixels), float64(cellPixels), float64(cellPixels))
			dc.Fill()
		}
	}

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		converted := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				converted.Set(x, y, dc.Image().At(x, y))
			}
		}
		return converted, nil
	}
	return img, nil
}

// cellContourCoverage estimates how close cell (i0,i1) sits to the zero
// level set by comparing its value against its axis-neighbors: if any
// neighbor's sign differs, the interface passes between them.
func cellContourCoverage(i0, i1 int, size grid.Size, values []float64, strides []int) float64 {
	self := values[grid.Linear(grid.Idx{i0, i1}, strides)]
	best := 1.0 // cell-units; large means "far from any crossing"
	offsets := [4]grid.Idx{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, o := range offsets {
		n := grid.Idx{i0 + o[0], i1 + o[1]}
		if !grid.Inside(n, size) {
			continue
		}
		nv := values[grid.Linear(n, strides)]
		if (self < 0) == (nv < 0) {
			continue
		}
		denom := self - nv
		if denom == 0 {
			continue
		}
		t := self / denom // fraction of the edge where the crossing occurs, in [0,1]
		if t < best {
			best = t
		}
	}
	return contourCoverage(best)
}

func blendBlack(r, g, b, coverage float64) (float64, float64, float64) {
	if coverage <= 0 {
		return r, g, b
	}
	return r * (1 - coverage), g * (1 - coverage), b * (1 - coverage)
}

func toByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
