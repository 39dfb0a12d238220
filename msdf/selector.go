package msdf

import (
	"math"

	"github.com/nozgames/msdfgen/geom"
)

// MultiDistance holds one signed distance per output channel.
type MultiDistance struct {
	R, G, B float64
}

// Median returns the middle of the three channel values, which
// classifies a pixel: Median >= 0 is inside the shape.
func (m MultiDistance) Median() float64 {
	return median3(m.R, m.G, m.B)
}

func median3(a, b, c float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		b = a
	}
	return b
}

// endpointEpsilon treats a closest-point parameter within this distance
// of 0 or 1 as landing exactly on the endpoint, for near-edge purposes.
const endpointEpsilon = 1e-9

// MultiDistanceSelector evaluates the per-channel distance of one
// contour at a query point. It holds no per-pixel allocation and is
// reused across every pixel: Generate builds one instance per contour and
// shares it between all row workers, which is safe because Evaluate keeps
// its running state in locals and never mutates the selector.
type MultiDistanceSelector struct {
	edges []geom.EdgeSegment
	// linear holds a precomputed hot-loop specialisation for every Linear
	// edge (boolean flattening leaves every edge Linear by the time a
	// Shape reaches generation): the edge vector, its inverse squared
	// length, the normalised direction and the orthonormal, computed once
	// per edge instead of once per pixel.
	linear []linearCache
}

// NewMultiDistanceSelector builds a selector over a contour's edges. The
// slice is retained, not copied; edges must not be mutated while the
// selector is in use.
func NewMultiDistanceSelector(edges []geom.EdgeSegment) *MultiDistanceSelector {
	linear := make([]linearCache, len(edges))
	for i, e := range edges {
		linear[i] = newLinearCache(e)
	}
	return &MultiDistanceSelector{edges: edges, linear: linear}
}

// linearCache is the precomputed per-edge data the Linear-edge
// point-to-segment formula needs, so the pixel hot loop never
// recomputes an edge vector, its length, or a normalised direction.
type linearCache struct {
	valid       bool
	p0, ab      geom.Vec2
	invLenSq    float64
	dir         geom.Vec2
	orthonormal geom.Vec2
}

func newLinearCache(e geom.EdgeSegment) linearCache {
	if e.Kind != geom.Linear {
		return linearCache{}
	}
	ab := e.P1.Sub(e.P0)
	lenSq := ab.LengthSquared()
	if lenSq < 1e-12 {
		return linearCache{}
	}
	dir := ab.Normalize()
	return linearCache{
		valid:       true,
		p0:          e.P0,
		ab:          ab,
		invLenSq:    1 / lenSq,
		dir:         dir,
		orthonormal: dir.Orthonormal(),
	}
}

// signedDistance inlines the point-to-segment distance formula against
// the precomputed cache fields, with no virtual dispatch on Kind. When
// the closest point falls strictly inside the segment the perpendicular
// projection onto the cached orthonormal gives the signed distance
// directly, skipping the square root and cross product the general
// formula needs; the endpoint-clamped case falls back to the full
// computation, matching geom.EdgeSegment.SignedDistanceAt exactly.
func (c linearCache) signedDistance(p geom.Vec2) (geom.SignedDistance, float64) {
	aq := p.Sub(c.p0)
	t := aq.Dot(c.ab) * c.invLenSq

	if t >= 0 && t <= 1 {
		perp := aq.Dot(c.orthonormal)
		orth := 1.0
		if perp == 0 {
			orth = 0
		}
		return geom.SignedDistance{Distance: perp, Orthogonality: orth}, t
	}

	tc := clamp01(t)
	closest := geom.Vec2{X: c.p0.X + c.ab.X*tc, Y: c.p0.Y + c.ab.Y*tc}
	toPoint := p.Sub(closest)
	sign := 1.0
	if c.dir.Cross(toPoint) < 0 {
		sign = -1
	}
	dist := toPoint.Length() * sign
	orth := 0.0
	if np := toPoint.Normalize(); np != (geom.Vec2{}) {
		orth = math.Abs(c.dir.Cross(np))
	}
	return geom.SignedDistance{Distance: dist, Orthogonality: orth}, tc
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Evaluate computes the MultiDistance of the contour at p: for each
// channel, the closest edge painted with that channel, including the
// near-edge substitution that replaces a distance with the perpendicular
// distance to a neighbouring edge's tangent line when the true closest
// point lands exactly on a shared endpoint. The substitution deliberately
// evaluates the *neighbour's* tangent line extended past its own
// endpoint (not the current edge's own tangent past the same point):
// the neighbour's endpoint is the shared vertex, so its line is the one
// that stays geometrically valid beyond it, and using it is what keeps
// this edge's own channel continuous right up to the corner instead of
// rounding off. The candidate still contributes to the current edge's
// own channels, never the neighbour's.
func (sel *MultiDistanceSelector) Evaluate(p geom.Vec2) MultiDistance {
	n := len(sel.edges)
	best := [3]geom.SignedDistance{
		geom.InfiniteSignedDistance,
		geom.InfiniteSignedDistance,
		geom.InfiniteSignedDistance,
	}

	for i := 0; i < n; i++ {
		e := sel.edges[i]
		var sd geom.SignedDistance
		var t float64
		if c := sel.linear[i]; c.valid {
			sd, t = c.signedDistance(p)
		} else {
			sd, t = e.SignedDistanceAt(p)
		}

		switch {
		case t <= endpointEpsilon:
			prev := sel.edges[(i-1+n)%n]
			if near, ok := tryNearEdge(prev, p, 1.5); ok && near.Less(sd) {
				sd = near
			}
		case t >= 1-endpointEpsilon:
			next := sel.edges[(i+1)%n]
			if near, ok := tryNearEdge(next, p, -0.5); ok && near.Less(sd) {
				sd = near
			}
		}

		for ch, mask := range [3]geom.ChannelMask{geom.ChannelRed, geom.ChannelGreen, geom.ChannelBlue} {
			if e.Color.Has(mask) && sd.Less(best[ch]) {
				best[ch] = sd
			}
		}
	}

	return MultiDistance{R: best[0].Distance, G: best[1].Distance, B: best[2].Distance}
}

// tryNearEdge evaluates the perpendicular distance to neighbour's tangent
// line, extended past the endpoint indicated by t (t<0 for the start,
// t>1 for the end). ok is false when p does not lie in the tangent's
// qualifying half-plane.
func tryNearEdge(neighbour geom.EdgeSegment, p geom.Vec2, t float64) (geom.SignedDistance, bool) {
	sd := neighbour.DistanceToPerpendicular(geom.InfiniteSignedDistance, p, t)
	if math.IsInf(sd.Distance, 0) {
		return geom.SignedDistance{}, false
	}
	return sd, true
}

// contourInnerAt classifies a contour as "inner" at p: its median
// distance agrees in sign with its own winding.
func contourInnerAt(median float64, winding int) bool {
	if winding > 0 {
		return median >= 0
	}
	if winding < 0 {
		return median < 0
	}
	return false
}

// combine applies the overlapping-contour combiner rule: the maximum
// across inner contours combined with the minimum across outer
// contours, per channel, ties preferring inner. Every contour is either
// inner or outer, so the greatest-absolute-median fallback is taken only
// for an empty perContour, where it is the zero MultiDistance.
func combine(perContour []MultiDistance, windings []int) MultiDistance {
	// result accumulates the inner maximum, outer the outer minimum.
	var result, outer MultiDistance
	haveInner, haveOuter := false, false
	var fallback MultiDistance
	fallbackAbsMedian := -1.0

	for i, md := range perContour {
		med := md.Median()
		absMed := math.Abs(med)
		if absMed > fallbackAbsMedian {
			fallbackAbsMedian = absMed
			fallback = md
		}

		if contourInnerAt(med, windings[i]) {
			if !haveInner {
				result.R, result.G, result.B = md.R, md.G, md.B
				haveInner = true
			} else {
				result.R = math.Max(result.R, md.R)
				result.G = math.Max(result.G, md.G)
				result.B = math.Max(result.B, md.B)
			}
		} else {
			if !haveOuter {
				outer = md
				haveOuter = true
			} else {
				outer.R = math.Min(outer.R, md.R)
				outer.G = math.Min(outer.G, md.G)
				outer.B = math.Min(outer.B, md.B)
			}
		}
	}

	switch {
	case haveInner && haveOuter:
		return MultiDistance{R: minCombine(result.R, outer.R), G: minCombine(result.G, outer.G), B: minCombine(result.B, outer.B)}
	case haveOuter:
		return outer
	case !haveInner:
		return fallback
	}
	return result
}

// minCombine folds an outer contour's distance into a result that
// already holds an inner maximum, without letting the outer value win
// ties against the inner one (ties prefer inner).
func minCombine(inner, outer float64) float64 {
	if outer < inner {
		return outer
	}
	return inner
}
