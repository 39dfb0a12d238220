package msdf

import (
	"testing"

	"github.com/nozgames/msdfgen/geom"
)

func squareContour() geom.Contour {
	pts := []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	edges := make([]geom.EdgeSegment, len(pts))
	for i := range pts {
		edges[i] = geom.NewLinear(pts[i], pts[(i+1)%len(pts)])
	}
	return geom.Contour{Edges: edges}
}

func TestNormalizeSplitsSingleEdgeContour(t *testing.T) {
	c := geom.Contour{Edges: []geom.EdgeSegment{
		geom.NewLinear(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 3, Y: 0}),
	}}
	s := geom.Shape{Contours: []geom.Contour{c}}
	out := Normalize(s)
	if len(out.Contours[0].Edges) != 3 {
		t.Fatalf("expected single-edge contour split into 3, got %d", len(out.Contours[0].Edges))
	}
}

func TestNormalizeLeavesMultiEdgeContourAlone(t *testing.T) {
	s := geom.Shape{Contours: []geom.Contour{squareContour()}}
	out := Normalize(s)
	if len(out.Contours[0].Edges) != 4 {
		t.Fatalf("expected square contour unchanged at 4 edges, got %d", len(out.Contours[0].Edges))
	}
}

func TestColorSimpleSquareColoursAdjacentSidesDistinctlyAtDefaultThreshold(t *testing.T) {
	// isCorner treats a join as a corner whenever the tangents' dot
	// product is <= 0, regardless of thresholdRad; a square's exact
	// 90-degree turns always satisfy that (dot == 0), so all four joins
	// are always corners and ColorSimple always takes the colorSpans
	// branch here, the same multi-colour-corner path CornerCube
	// exercises, even at the default threshold.
	s := geom.Shape{Contours: []geom.Contour{squareContour()}}
	out := ColorSimple(s, DefaultCornerAngleThreshold)
	edges := out.Contours[0].Edges
	seen := map[geom.ChannelMask]bool{}
	for i, e := range edges {
		seen[e.Color] = true
		next := edges[(i+1)%len(edges)]
		if e.Color == next.Color {
			t.Errorf("adjacent edges %d and %d both got %v", i, (i+1)%len(edges), e.Color)
		}
	}
	if len(seen) < 2 {
		t.Errorf("expected multiple colors across the square's corners, got %v", seen)
	}
}

func TestColorSimpleSquareWithSharpThresholdUsesMultipleColors(t *testing.T) {
	// A near-zero threshold still makes every 90-degree turn a corner
	// (as does the default, per the test above), so the square should
	// end up with more than one distinct colour here too.
	s := geom.Shape{Contours: []geom.Contour{squareContour()}}
	out := ColorSimple(s, 0.01)
	seen := map[geom.ChannelMask]bool{}
	for _, e := range out.Contours[0].Edges {
		seen[e.Color] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected multiple colors across the square's corners, got %v", seen)
	}
}

func TestIsCornerReversingTangentsAlwaysCorner(t *testing.T) {
	in := geom.Vec2{X: 1, Y: 0}
	out := geom.Vec2{X: -1, Y: 0}
	if !isCorner(in, out, DefaultCornerAngleThreshold) {
		t.Error("expected a reversing join to always be a corner")
	}
}

func TestIsCornerStraightContinuationNotCorner(t *testing.T) {
	in := geom.Vec2{X: 1, Y: 0}
	out := geom.Vec2{X: 1, Y: 0}
	if isCorner(in, out, DefaultCornerAngleThreshold) {
		t.Error("expected a straight continuation to not be a corner")
	}
}

func TestColorSpansNoAdjacentClash(t *testing.T) {
	for spanCount := 2; spanCount <= 10; spanCount++ {
		edges := make([]geom.EdgeSegment, spanCount)
		corners := make([]int, spanCount)
		for i := range edges {
			corners[i] = i
		}
		colorSpans(edges, corners)
		for i := 0; i < spanCount; i++ {
			j := (i + 1) % spanCount
			if edges[i].Color == edges[j].Color {
				t.Errorf("spanCount=%d: adjacent spans %d and %d both got %v", spanCount, i, j, edges[i].Color)
			}
		}
	}
}
