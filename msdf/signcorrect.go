package msdf

import (
	"sort"

	"github.com/nozgames/msdfgen/geom"
)

// SignCorrect walks each row's scan-line intersections against every
// edge of every contour and flips any texel whose packed median
// disagrees with the non-zero winding rule. Each row rebuilds its own
// intersection list independently, so rows may run in parallel even
// though the left-to-right sweep within a row is sequential.
func SignCorrect(bmp *Bitmap, shape PreparedShape, p GenerateParams) {
	if bmp.Empty {
		return
	}
	forEachRowParallel(p.Height, p.Workers, func(yStart, yEnd int) {
		signCorrectRows(bmp, shape, p, yStart, yEnd)
	})
}

func signCorrectRows(bmp *Bitmap, shape PreparedShape, p GenerateParams, yStart, yEnd int) {
	var crossings []geom.Intersection
	for inputY := yStart; inputY < yEnd; inputY++ {
		shapeY := (float64(inputY)+0.5)/p.Scale.Y - p.Translate.Y

		crossings = crossings[:0]
		for _, c := range shape.Contours {
			for _, e := range c.Edges {
				crossings = e.ScanLineIntersections(shapeY, crossings)
			}
		}
		sort.Slice(crossings, func(i, j int) bool { return crossings[i].X < crossings[j].X })

		outRow := inputY
		if p.InverseYAxis {
			outRow = p.Height - 1 - inputY
		}

		winding := 0
		next := 0
		for x := 0; x < p.Width; x++ {
			shapeX := (float64(x)+0.5)/p.Scale.X - p.Translate.X
			for next < len(crossings) && crossings[next].X <= shapeX {
				winding += crossings[next].Direction
				next++
			}

			expectedInside := winding != 0
			median := bmp.Median(x, outRow)
			actualInside := median >= 0.5
			if actualInside != expectedInside {
				r, g, b := bmp.At(x, outRow)
				bmp.Set(x, outRow, 1-r, 1-g, 1-b)
			}
		}
	}
}
