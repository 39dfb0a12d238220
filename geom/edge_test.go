package geom

import (
	"math"
	"testing"
)

func TestLinearSignedDistanceSign(t *testing.T) {
	// Horizontal edge from (0,0) to (1,0). A point above is on the
	// positive side under the cross(tangent, toPoint) convention.
	e := NewLinear(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0})

	above := Vec2{X: 0.5, Y: 1}
	sd, tc := e.SignedDistanceAt(above)
	if tc != 0.5 {
		t.Errorf("expected closest t=0.5, got %v", tc)
	}
	if math.Abs(math.Abs(sd.Distance)-1) > 1e-9 {
		t.Errorf("expected |distance| 1, got %v", sd.Distance)
	}

	below := Vec2{X: 0.5, Y: -1}
	sdBelow, _ := e.SignedDistanceAt(below)
	if sdBelow.Distance == sd.Distance {
		t.Errorf("expected opposite signs above/below the edge")
	}
}

func TestLinearSignedDistanceClampsToEndpoints(t *testing.T) {
	e := NewLinear(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0})
	sd, tc := e.SignedDistanceAt(Vec2{X: -5, Y: 0})
	if tc != 0 {
		t.Errorf("expected clamp to t=0, got %v", tc)
	}
	if math.Abs(math.Abs(sd.Distance)-5) > 1e-9 {
		t.Errorf("expected distance 5, got %v", sd.Distance)
	}
}

func TestQuadraticSignedDistanceAtApex(t *testing.T) {
	// Symmetric upward-bowing quadratic; the closest point to a point
	// directly above the apex should be near t=0.5.
	e := NewQuadratic(Vec2{X: -1, Y: 0}, Vec2{X: 0, Y: 1}, Vec2{X: 1, Y: 0})
	_, tc := e.SignedDistanceAt(Vec2{X: 0, Y: 2})
	if math.Abs(tc-0.5) > 1e-6 {
		t.Errorf("expected closest t near 0.5, got %v", tc)
	}
}

func TestCubicSignedDistanceMatchesLinearForCollinearControls(t *testing.T) {
	// A cubic with colinear control points degenerates to a straight
	// line; distance to a perpendicular point should match the linear
	// case.
	e := NewCubic(Vec2{X: 0, Y: 0}, Vec2{X: 1.0 / 3, Y: 0}, Vec2{X: 2.0 / 3, Y: 0}, Vec2{X: 1, Y: 0})
	sd, _ := e.SignedDistanceAt(Vec2{X: 0.5, Y: 2})
	if math.Abs(math.Abs(sd.Distance)-2) > 1e-6 {
		t.Errorf("expected |distance| 2, got %v", sd.Distance)
	}
}

func TestIsDegenerate(t *testing.T) {
	zero := NewLinear(Vec2{X: 1, Y: 1}, Vec2{X: 1, Y: 1})
	if !zero.IsDegenerate() {
		t.Error("expected zero-length linear edge to be degenerate")
	}
	nonzero := NewLinear(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0})
	if nonzero.IsDegenerate() {
		t.Error("expected non-zero-length edge to not be degenerate")
	}
}

func TestSplitInThirdsPreservesEndpointsAndColor(t *testing.T) {
	e := NewQuadratic(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 2}, Vec2{X: 2, Y: 0})
	e.Color = ChannelMagenta
	parts := e.SplitInThirds()

	if parts[0].P0 != e.P0 {
		t.Errorf("first part should start at original P0, got %v", parts[0].P0)
	}
	if parts[2].P1 != e.P1 {
		t.Errorf("last part should end at original P1, got %v", parts[2].P1)
	}
	if parts[0].P1 != parts[1].P0 || parts[1].P1 != parts[2].P0 {
		t.Error("split parts should chain endpoint-to-endpoint")
	}
	for i, p := range parts {
		if p.Color != ChannelMagenta {
			t.Errorf("part %d lost color: got %v", i, p.Color)
		}
	}
}

func TestReverseRoundTrip(t *testing.T) {
	e := NewCubic(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 1}, Vec2{X: 2, Y: -1}, Vec2{X: 3, Y: 0})
	back := e.Reverse().Reverse()
	if back != e {
		t.Errorf("double reverse should be identity, got %+v want %+v", back, e)
	}
}

func TestDistanceToPerpendicularPassthroughInRange(t *testing.T) {
	e := NewLinear(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0})
	sd := SignedDistance{Distance: 1, Orthogonality: 0.5}
	got := e.DistanceToPerpendicular(sd, Vec2{X: 0.5, Y: 1}, 0.5)
	if got != sd {
		t.Errorf("expected passthrough for in-range t, got %+v", got)
	}
}

func TestScanLineIntersectionsLinear(t *testing.T) {
	e := NewLinear(Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: 2})
	out := e.ScanLineIntersections(1, nil)
	if len(out) != 1 {
		t.Fatalf("expected 1 crossing, got %d", len(out))
	}
	if out[0].X != 0 {
		t.Errorf("expected crossing at x=0, got %v", out[0].X)
	}
	if out[0].Direction != 1 {
		t.Errorf("expected downward crossing, got %v", out[0].Direction)
	}
}
