// Package testcases holds named fixture shapes exercising the pipeline's
// concrete scenarios: a plain square, a ring (two concentric circles),
// a circle with a subtracted hole, a corner case with a sharp diagonal
// edge, two overlapping components, and an empty glyph.
package testcases

import (
	"math"

	"github.com/nozgames/msdfgen/geom"
	"github.com/nozgames/msdfgen/spriteimport"
)

// circleAnchors approximates a circle of the given radius centred at c
// with four quadratic-Bézier quadrants. Each control point sits where the
// circle's tangents at the quadrant's two anchors meet, radius/sqrt(2)
// beyond the chord midpoint; the curvature is negative because each
// chord's Orthonormal points towards the centre.
func circleAnchors(center geom.Vec2, radius float64) []spriteimport.Anchor {
	curvature := -radius / math.Sqrt2
	angles := [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
	anchors := make([]spriteimport.Anchor, len(angles))
	for i, a := range angles {
		anchors[i] = spriteimport.Anchor{
			Pos:       geom.Vec2{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)},
			Curvature: curvature,
		}
	}
	return anchors
}

// UnitSquare is the simplest non-trivial case: a single convex contour
// with four 90-degree corners and no curved edges.
func UnitSquare() []spriteimport.Path {
	return []spriteimport.Path{{Anchors: []spriteimport.Anchor{
		{Pos: geom.Vec2{X: 0, Y: 0}}, {Pos: geom.Vec2{X: 1, Y: 0}},
		{Pos: geom.Vec2{X: 1, Y: 1}}, {Pos: geom.Vec2{X: 0, Y: 1}},
	}}}
}

// LetterO is a ring: an outer circle with an inner circle subtracted,
// exercising curved edges plus draw-order subtraction with no bounding
// square anywhere in the outline.
func LetterO() []spriteimport.Path {
	outer := spriteimport.Path{Anchors: circleAnchors(geom.Vec2{}, 1.0)}
	inner := spriteimport.Path{Subtract: true, Anchors: circleAnchors(geom.Vec2{}, 0.5)}
	return []spriteimport.Path{outer, inner}
}

// CircleWithHole is a solid circle with a small off-centre circular hole
// subtracted, exercising subtraction where the hole does not share the
// outer shape's centre.
func CircleWithHole() []spriteimport.Path {
	outer := spriteimport.Path{Anchors: circleAnchors(geom.Vec2{}, 2.0)}
	hole := spriteimport.Path{Subtract: true, Anchors: circleAnchors(geom.Vec2{X: 0.5, Y: 0.5}, 0.5)}
	return []spriteimport.Path{outer, hole}
}

// CornerCube is a square rotated 45 degrees, so every corner is a sharp
// diagonal join rather than axis-aligned, exercising the corner-angle
// threshold at a boundary case.
func CornerCube() []spriteimport.Path {
	return []spriteimport.Path{{Anchors: []spriteimport.Anchor{
		{Pos: geom.Vec2{X: 0, Y: 1}}, {Pos: geom.Vec2{X: 1, Y: 0}},
		{Pos: geom.Vec2{X: 0, Y: -1}}, {Pos: geom.Vec2{X: -1, Y: 0}},
	}}}
}

// OverlappingSquares is two add paths whose bounding boxes overlap,
// exercising the final union pass that merges unrelated add contours
// drawn without an intervening subtract.
func OverlappingSquares() []spriteimport.Path {
	return []spriteimport.Path{
		{Anchors: []spriteimport.Anchor{
			{Pos: geom.Vec2{X: 0, Y: 0}}, {Pos: geom.Vec2{X: 1.5, Y: 0}},
			{Pos: geom.Vec2{X: 1.5, Y: 1.5}}, {Pos: geom.Vec2{X: 0, Y: 1.5}},
		}},
		{Anchors: []spriteimport.Anchor{
			{Pos: geom.Vec2{X: 1, Y: 1}}, {Pos: geom.Vec2{X: 2.5, Y: 1}},
			{Pos: geom.Vec2{X: 2.5, Y: 2.5}}, {Pos: geom.Vec2{X: 1, Y: 2.5}},
		}},
	}
}

// EmptyGlyph is a path list with nothing in it, the degenerate case a
// glyph with no contours (e.g. the space character) produces.
func EmptyGlyph() []spriteimport.Path {
	return nil
}
