package render_test

import (
	"testing"

	"github.com/ccurtis0/fast-marching-method/grid"
	"github.com/ccurtis0/fast-marching-method/render"
)

func TestRenderFieldDimensions(t *testing.T) {
	size := grid.Size{4, 3}
	values := make([]float64, size.Product())
	for i := range values {
		values[i] = float64(i) - 5
	}

	img, err := render.RenderField(size, values, 8, render.SignedPalette(6))
	if err != nil {
		t.Fatalf("RenderField: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("image size = %dx%d; want 32x24", b.Dx(), b.Dy())
	}
}

func TestRenderFieldRejectsWrongDimension(t *testing.T) {
	size := grid.Size{2, 2, 2}
	values := make([]float64, size.Product())
	if _, err := render.RenderField(size, values, 4, nil); err != render.ErrDimensionMismatch {
		t.Errorf("err = %v; want ErrDimensionMismatch", err)
	}
}

func TestRenderFieldRejectsInvalidCellPixels(t *testing.T) {
	size := grid.Size{2, 2}
	values := make([]float64, size.Product())
	if _, err := render.RenderField(size, values, 0, nil); err != render.ErrInvalidCellPixels {
		t.Errorf("err = %v; want ErrInvalidCellPixels", err)
	}
}

func TestSignedPaletteSaturates(t *testing.T) {
	p := render.SignedPalette(1)
	r, g, b := p(10)
	if r != 1 || g != 0 || b != 0 {
		t.Errorf("p(10) = (%v,%v,%v); want (1,0,0) saturated red", r, g, b)
	}
	r, g, b = p(-10)
	if r != 0 || g != 0 || b != 1 {
		t.Errorf("p(-10) = (%v,%v,%v); want (0,0,1) saturated blue", r, g, b)
	}
}
