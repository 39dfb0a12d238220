package spriteimport

import (
	"math"
	"testing"

	"github.com/nozgames/msdfgen/boolops"
	"github.com/nozgames/msdfgen/geom"
)

func squareAnchors() []Anchor {
	return []Anchor{
		{Pos: geom.Vec2{X: 0, Y: 0}},
		{Pos: geom.Vec2{X: 1, Y: 0}},
		{Pos: geom.Vec2{X: 1, Y: 1}},
		{Pos: geom.Vec2{X: 0, Y: 1}},
	}
}

func TestBuildContourRejectsTooFewAnchors(t *testing.T) {
	_, err := buildContour([]Anchor{{Pos: geom.Vec2{X: 0, Y: 0}}, {Pos: geom.Vec2{X: 1, Y: 0}}})
	if err != geom.ErrInvalidShape {
		t.Errorf("got err %v, want ErrInvalidShape", err)
	}
}

func TestBuildContourStraightEdgesForZeroCurvature(t *testing.T) {
	c, err := buildContour(squareAnchors())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(c.Edges))
	}
	for i, e := range c.Edges {
		if e.Kind != geom.Linear {
			t.Errorf("edge %d: expected Linear for zero curvature, got %v", i, e.Kind)
		}
	}
}

func TestBuildContourCurvedEdgeControlPointOffset(t *testing.T) {
	anchors := []Anchor{
		{Pos: geom.Vec2{X: 0, Y: 0}, Curvature: 0.5},
		{Pos: geom.Vec2{X: 2, Y: 0}},
		{Pos: geom.Vec2{X: 2, Y: 2}},
	}
	c, err := buildContour(anchors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := c.Edges[0]
	if first.Kind != geom.Quadratic {
		t.Fatalf("expected Quadratic for non-zero curvature, got %v", first.Kind)
	}
	// The control point should sit on the perpendicular bisector of the
	// edge, offset from the midpoint by exactly the curvature magnitude.
	mid := geom.Vec2{X: 1, Y: 0}
	offset := first.Control0.Sub(mid).Length()
	if math.Abs(offset-0.5) > 1e-9 {
		t.Errorf("got control offset %v, want 0.5", offset)
	}
	perp := first.Control0.Sub(mid)
	edgeDir := geom.Vec2{X: 2, Y: 0}
	if math.Abs(perp.Dot(edgeDir)) > 1e-9 {
		t.Errorf("expected control offset perpendicular to the edge, got dot %v", perp.Dot(edgeDir))
	}
}

func TestBuildShapeRejectsInvalidPath(t *testing.T) {
	paths := []Path{{Anchors: []Anchor{{Pos: geom.Vec2{X: 0, Y: 0}}, {Pos: geom.Vec2{X: 1, Y: 0}}}}}
	_, err := BuildShape(paths, boolops.Options{}, 3.0)
	if err != geom.ErrInvalidShape {
		t.Errorf("got err %v, want ErrInvalidShape", err)
	}
}

func TestBuildShapeEmptyPathListIsEmptyShape(t *testing.T) {
	s, err := BuildShape(nil, boolops.Options{}, 3.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsEmpty() {
		t.Errorf("expected empty shape for no paths, got %d contours", len(s.Contours))
	}
}

func TestBuildShapeColorsEdgesAndSetsYAxis(t *testing.T) {
	paths := []Path{{Anchors: squareAnchors()}}
	s, err := BuildShape(paths, boolops.Options{}, 3.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.InverseYAxis {
		t.Error("expected sprite shapes to have InverseYAxis false")
	}
	for _, c := range s.Contours {
		for _, e := range c.Edges {
			if e.Color == geom.ChannelNone {
				t.Error("expected every edge to be assigned a non-empty channel mask")
			}
		}
	}
}

func TestBuildShapeSubtractRemovesOverlap(t *testing.T) {
	outer := Path{Anchors: []Anchor{
		{Pos: geom.Vec2{X: 0, Y: 0}}, {Pos: geom.Vec2{X: 4, Y: 0}},
		{Pos: geom.Vec2{X: 4, Y: 4}}, {Pos: geom.Vec2{X: 0, Y: 4}},
	}}
	hole := Path{Subtract: true, Anchors: []Anchor{
		{Pos: geom.Vec2{X: 1, Y: 1}}, {Pos: geom.Vec2{X: 2, Y: 1}},
		{Pos: geom.Vec2{X: 2, Y: 2}}, {Pos: geom.Vec2{X: 1, Y: 2}},
	}}
	s, err := BuildShape([]Path{outer, hole}, boolops.Options{}, 3.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Contours) < 2 {
		t.Fatalf("expected at least 2 contours (outer boundary + hole), got %d", len(s.Contours))
	}
}
