package msdf

import (
	"testing"

	"github.com/nozgames/msdfgen/geom"
)

func squareParams() GenerateParams {
	return GenerateParams{
		Width: 6, Height: 6, Range: 1,
		Scale:     geom.Vec2{X: 2, Y: 2},
		Translate: geom.Vec2{X: 0.5, Y: 0.5},
	}
}

func TestSignCorrectFlipsInteriorPixelMismatch(t *testing.T) {
	shape := Prepare(whiteUnitSquare())
	p := squareParams()

	bmp := NewBitmap(p.Width, p.Height)
	// Pixel (2,2) maps to shape point (0.75, 0.75), inside the square,
	// but is deliberately packed as if it were outside.
	bmp.Set(2, 2, 0.1, 0.1, 0.1)

	SignCorrect(bmp, shape, p)

	r, g, b := bmp.At(2, 2)
	if r != 0.9 || g != 0.9 || b != 0.9 {
		t.Errorf("expected mismatched interior pixel flipped to (0.9,0.9,0.9), got (%v,%v,%v)", r, g, b)
	}
}

func TestSignCorrectFlipsExteriorPixelMismatch(t *testing.T) {
	shape := Prepare(whiteUnitSquare())
	p := squareParams()

	bmp := NewBitmap(p.Width, p.Height)
	// Pixel (5,5) maps to shape point (2.25, 2.25), well outside the
	// square, but is deliberately packed as if it were inside.
	bmp.Set(5, 5, 0.9, 0.9, 0.9)
	// The flip is 1 - value in float32, which is 0.100000024, not 0.1.
	before, _, _ := bmp.At(5, 5)
	want := 1 - before

	SignCorrect(bmp, shape, p)

	r, g, b := bmp.At(5, 5)
	if r != want || g != want || b != want {
		t.Errorf("expected mismatched exterior pixel flipped to 1-0.9 (%v), got (%v,%v,%v)", want, r, g, b)
	}
}

func TestSignCorrectLeavesAgreeingPixelsAlone(t *testing.T) {
	shape := Prepare(whiteUnitSquare())
	p := squareParams()

	bmp := NewBitmap(p.Width, p.Height)
	bmp.Set(2, 2, 0.9, 0.9, 0.9) // interior, correctly packed as inside

	SignCorrect(bmp, shape, p)

	r, g, b := bmp.At(2, 2)
	if r != 0.9 || g != 0.9 || b != 0.9 {
		t.Errorf("expected correctly-classified pixel to stay unchanged, got (%v,%v,%v)", r, g, b)
	}
}

func TestSignCorrectSkipsEmptyBitmap(t *testing.T) {
	bmp := &Bitmap{Width: 1, Height: 1, Pixels: make([]float32, 3), Empty: true}
	bmp.Set(0, 0, 0.1, 0.1, 0.1)
	SignCorrect(bmp, Prepare(geom.Shape{}), GenerateParams{Width: 1, Height: 1, Scale: geom.Vec2{X: 1, Y: 1}})
	r, g, b := bmp.At(0, 0)
	if r != 0.1 || g != 0.1 || b != 0.1 {
		t.Errorf("expected empty bitmap to be left untouched, got (%v,%v,%v)", r, g, b)
	}
}
