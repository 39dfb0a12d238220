// Package boolops flattens curved edges into polylines and performs the
// polygon union/difference operations used to resolve overlapping and
// subtract paths before a Shape reaches the colouring and generation
// stages.
package boolops

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"

	"github.com/nozgames/msdfgen/geom"
)

// DefaultTessellationSteps is the fixed number of line segments each
// curved edge is replaced by during flattening, applied uniformly across
// every edge so windings stay consistent.
const DefaultTessellationSteps = 16

// DefaultPrecisionDigits is the number of decimal digits of coordinate
// precision preserved by the boolean engine.
const DefaultPrecisionDigits = 6

// Options controls the flattening and precision behaviour of Union and
// Difference.
type Options struct {
	// TessellationSteps is the number of line samples per curved edge.
	// Zero means DefaultTessellationSteps.
	TessellationSteps int
	// PrecisionDigits is the number of decimal digits retained per
	// coordinate. Zero means DefaultPrecisionDigits.
	PrecisionDigits int
}

func (o Options) steps() int {
	if o.TessellationSteps > 0 {
		return o.TessellationSteps
	}
	return DefaultTessellationSteps
}

func (o Options) precision() int {
	if o.PrecisionDigits > 0 {
		return o.PrecisionDigits
	}
	return DefaultPrecisionDigits
}

// flattenContour replaces every Quadratic and Cubic edge with N linear
// segments at uniform parameter steps; Linear edges pass through
// unchanged. N is fixed across all edges of all contours in a single
// operation (Options.steps()).
func flattenContour(c geom.Contour, steps, precisionDigits int) polyclip.Contour {
	out := make(polyclip.Contour, 0, len(c.Edges)*steps)
	for _, e := range c.Edges {
		if e.Kind == geom.Linear {
			out = append(out, polyclip.Point{X: e.P0.X, Y: e.P0.Y})
			continue
		}
		for i := 0; i < steps; i++ {
			t := float64(i) / float64(steps)
			p := e.Point(t)
			out = append(out, polyclip.Point{X: p.X, Y: p.Y})
		}
	}
	return roundContour(out, precisionDigits)
}

func roundContour(c polyclip.Contour, digits int) polyclip.Contour {
	scale := math.Pow10(digits)
	out := make(polyclip.Contour, len(c))
	for i, p := range c {
		out[i] = polyclip.Point{
			X: math.Round(p.X*scale) / scale,
			Y: math.Round(p.Y*scale) / scale,
		}
	}
	return out
}

func shapeToPolygon(s geom.Shape, steps, precisionDigits int) polyclip.Polygon {
	poly := make(polyclip.Polygon, 0, len(s.Contours))
	for _, c := range s.Contours {
		if len(c.Edges) == 0 {
			continue
		}
		poly = append(poly, flattenContour(c, steps, precisionDigits))
	}
	return poly
}

// polygonToShape converts a polyclip.Polygon (all-linear contours) back
// into a Shape. polyclip-go produces CCW-positive contours in a Y-up
// sense; every contour is reversed here so that positive winding matches
// the generator's CW-under-shoelace convention.
func polygonToShape(poly polyclip.Polygon) geom.Shape {
	contours := make([]geom.Contour, 0, len(poly))
	for _, pc := range poly {
		if len(pc) < 2 {
			continue
		}
		edges := make([]geom.EdgeSegment, 0, len(pc))
		n := len(pc)
		for i := 0; i < n; i++ {
			a := pc[i]
			b := pc[(i+1)%n]
			edges = append(edges, geom.NewLinear(
				geom.Vec2{X: a.X, Y: a.Y},
				geom.Vec2{X: b.X, Y: b.Y},
			))
		}
		contours = append(contours, geom.Contour{Edges: edges}.Reverse())
	}
	return geom.Shape{Contours: contours}
}

// Union merges every contour of every given shape using the non-zero
// fill rule. Contours are accumulated one at a time, including the
// contours belonging to the same input shape, so that a single shape
// whose own contours overlap (e.g. two unrelated "add" paths merged
// into one Shape before reaching this stage) still has its mutual
// intersections resolved, not just intersections between distinct
// shapes. An empty input list returns an empty Shape.
func Union(opts Options, shapes ...geom.Shape) geom.Shape {
	steps, precision := opts.steps(), opts.precision()
	var acc polyclip.Polygon
	first := true
	for _, s := range shapes {
		if s.IsEmpty() {
			continue
		}
		for _, c := range s.Contours {
			if len(c.Edges) == 0 {
				continue
			}
			p := polyclip.Polygon{flattenContour(c, steps, precision)}
			if first {
				acc = p
				first = false
				continue
			}
			acc = acc.Construct(polyclip.UNION, p)
		}
	}
	if first {
		return geom.Shape{}
	}
	return polygonToShape(acc)
}

// Difference subtracts every edge of subtract from base, in that order.
// If base is empty the operation is skipped and an empty Shape is
// returned (empty shapes skip the operation per the boolean stage's
// contract).
func Difference(opts Options, base, subtract geom.Shape) geom.Shape {
	if base.IsEmpty() {
		return geom.Shape{}
	}
	steps, precision := opts.steps(), opts.precision()
	baseP := shapeToPolygon(base, steps, precision)
	if subtract.IsEmpty() {
		return polygonToShape(baseP)
	}
	subP := shapeToPolygon(subtract, steps, precision)
	result := baseP.Construct(polyclip.DIFFERENCE, subP)
	return polygonToShape(result)
}
