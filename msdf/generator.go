package msdf

import (
	"github.com/nozgames/msdfgen/geom"
)

// PreparedShape is a Shape that has already passed through boolean,
// normalize and colour, plus the pre-classified winding of each contour.
// It is read-only during generation.
type PreparedShape struct {
	Contours []geom.Contour
	Windings []int
}

// Prepare pre-classifies every contour's winding sign ahead of the pixel
// loop, so the hot loop never recomputes it.
func Prepare(s geom.Shape) PreparedShape {
	ps := PreparedShape{
		Contours: s.Contours,
		Windings: make([]int, len(s.Contours)),
	}
	for i, c := range s.Contours {
		ps.Windings[i] = c.Winding()
	}
	return ps
}

// GenerateParams carries the per-call geometry the generator needs: the
// output dimensions, the distance range that saturates the field, and
// the pixel-to-shape-space mapping `shape_pos = (pixel+0.5)/scale -
// translate`.
type GenerateParams struct {
	Width, Height int
	Range         float64
	Scale         geom.Vec2
	Translate     geom.Vec2
	InverseYAxis  bool
	// Workers is the row-parallel fan-out. Zero means runtime.NumCPU().
	Workers int
}

// Generate runs the overlapping-contour combiner: for every pixel it
// evaluates a MultiDistanceSelector per contour, combines per-contour
// results by winding, and packs the normalised result into the output
// row (flipped when InverseYAxis is set). Rows are independent and are
// partitioned across a worker pool; spatial culling is never applied —
// every contour is evaluated at every pixel.
func Generate(shape PreparedShape, p GenerateParams) *Bitmap {
	bmp := NewBitmap(p.Width, p.Height)
	if len(shape.Contours) == 0 {
		bmp.Empty = true
		return bmp
	}

	selectors := make([]*MultiDistanceSelector, len(shape.Contours))
	for i, c := range shape.Contours {
		selectors[i] = NewMultiDistanceSelector(c.Edges)
	}

	forEachRowParallel(p.Height, p.Workers, func(yStart, yEnd int) {
		generateRows(bmp, shape, selectors, p, yStart, yEnd)
	})

	return bmp
}

func generateRows(bmp *Bitmap, shape PreparedShape, selectors []*MultiDistanceSelector, p GenerateParams, yStart, yEnd int) {
	perContour := make([]MultiDistance, len(selectors))
	for y := yStart; y < yEnd; y++ {
		outRow := y
		if p.InverseYAxis {
			outRow = p.Height - 1 - y
		}
		for x := 0; x < p.Width; x++ {
			pos := geom.Vec2{
				X: (float64(x)+0.5)/p.Scale.X - p.Translate.X,
				Y: (float64(y)+0.5)/p.Scale.Y - p.Translate.Y,
			}
			for i, sel := range selectors {
				perContour[i] = sel.Evaluate(pos)
			}
			md := combine(perContour, shape.Windings)
			r := clampPacked(md.R, p.Range)
			g := clampPacked(md.G, p.Range)
			b := clampPacked(md.B, p.Range)
			bmp.Set(x, outRow, r, g, b)
		}
	}
}
