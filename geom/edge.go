package geom

import "math"

// ChannelMask selects which of the three MSDF channels an edge
// contributes its distance to. Values are drawn from the seven
// non-black combinations of {R, G, B}.
type ChannelMask uint8

const (
	ChannelNone    ChannelMask = 0
	ChannelRed     ChannelMask = 1 << 0
	ChannelGreen   ChannelMask = 1 << 1
	ChannelBlue    ChannelMask = 1 << 2
	ChannelYellow              = ChannelRed | ChannelGreen
	ChannelMagenta             = ChannelRed | ChannelBlue
	ChannelCyan                = ChannelGreen | ChannelBlue
	ChannelWhite               = ChannelRed | ChannelGreen | ChannelBlue
)

// Has reports whether the mask includes channel c.
func (m ChannelMask) Has(c ChannelMask) bool { return m&c != 0 }

// Kind identifies which closed-polymorphism variant an EdgeSegment holds.
// Dispatch on Kind compiles to a switch; there is no virtual dispatch.
type Kind uint8

const (
	Linear Kind = iota
	Quadratic
	Cubic
)

// EdgeSegment is one immutable piece of a Contour: a line, a quadratic
// Bézier, or a cubic Bézier. Control1 is unused for Linear and Quadratic
// edges. Two adjacent segments within a contour share an endpoint exactly
// (P1 of one equals P0 of the next).
type EdgeSegment struct {
	Kind     Kind
	P0       Vec2
	Control0 Vec2
	Control1 Vec2
	P1       Vec2
	Color    ChannelMask
}

// NewLinear builds a Linear edge segment between p0 and p1.
func NewLinear(p0, p1 Vec2) EdgeSegment {
	return EdgeSegment{Kind: Linear, P0: p0, P1: p1}
}

// NewQuadratic builds a Quadratic edge segment with the given control point.
func NewQuadratic(p0, control, p1 Vec2) EdgeSegment {
	return EdgeSegment{Kind: Quadratic, P0: p0, Control0: control, P1: p1}
}

// NewCubic builds a Cubic edge segment with the given control points.
func NewCubic(p0, c0, c1, p1 Vec2) EdgeSegment {
	return EdgeSegment{Kind: Cubic, P0: p0, Control0: c0, Control1: c1, P1: p1}
}

// IsDegenerate reports whether the edge has effectively zero length: a
// DegenerateEdge is silently tolerated by callers, contributing no
// distance and an orthonormal of (0, 1).
func (e EdgeSegment) IsDegenerate() bool {
	switch e.Kind {
	case Linear:
		return e.P1.Sub(e.P0).LengthSquared() < degenerateLengthThreshold
	case Quadratic:
		return e.P1.Sub(e.P0).LengthSquared() < degenerateLengthThreshold &&
			e.Control0.Sub(e.P0).LengthSquared() < degenerateLengthThreshold
	default:
		return e.P1.Sub(e.P0).LengthSquared() < degenerateLengthThreshold &&
			e.Control0.Sub(e.P0).LengthSquared() < degenerateLengthThreshold &&
			e.Control1.Sub(e.P0).LengthSquared() < degenerateLengthThreshold
	}
}

// Point evaluates the edge's parametric position at t.
func (e EdgeSegment) Point(t float64) Vec2 {
	switch e.Kind {
	case Linear:
		return lerp(e.P0, e.P1, t)
	case Quadratic:
		return bezier2(e.P0, e.Control0, e.P1, t)
	default:
		return bezier3(e.P0, e.Control0, e.Control1, e.P1, t)
	}
}

// Direction returns the (non-normalised) tangent vector at t.
func (e EdgeSegment) Direction(t float64) Vec2 {
	switch e.Kind {
	case Linear:
		return e.P1.Sub(e.P0)
	case Quadratic:
		// d/dt B2(t) = 2(1-t)(C-P0) + 2t(P1-C)
		return e.Control0.Sub(e.P0).Mul(2 * (1 - t)).Add(e.P1.Sub(e.Control0).Mul(2 * t))
	default:
		omt := 1 - t
		// d/dt B3(t) = 3(1-t)^2 (C0-P0) + 6(1-t)t (C1-C0) + 3t^2 (P1-C1)
		a := e.Control0.Sub(e.P0).Mul(3 * omt * omt)
		b := e.Control1.Sub(e.Control0).Mul(6 * omt * t)
		c := e.P1.Sub(e.Control1).Mul(3 * t * t)
		return a.Add(b).Add(c)
	}
}

func lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func bezier2(p0, c, p1 Vec2, t float64) Vec2 {
	omt := 1 - t
	return p0.Mul(omt * omt).Add(c.Mul(2 * omt * t)).Add(p1.Mul(t * t))
}

func bezier3(p0, c0, c1, p1 Vec2, t float64) Vec2 {
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).Add(c0.Mul(3 * omt2 * t)).Add(c1.Mul(3 * omt * t2)).Add(p1.Mul(t2 * t))
}

// orthogonality is |cross(normalized tangent, normalized (p - point))|,
// the tie-breaker used by SignedDistance ordering.
func orthogonality(tangent, toPoint Vec2) float64 {
	nt := tangent.Normalize()
	np := toPoint.Normalize()
	if np == (Vec2{}) {
		return 0
	}
	return math.Abs(nt.Cross(np))
}

func signOf(tangent, toPoint Vec2) float64 {
	if tangent.Cross(toPoint) < 0 {
		return -1
	}
	return 1
}

// SignedDistanceAt returns the closest signed distance from p to the edge,
// together with the parameter t* at which it is attained. The sign is the
// sign of cross(tangent(t*), p - point(t*)).
func (e EdgeSegment) SignedDistanceAt(p Vec2) (SignedDistance, float64) {
	if e.IsDegenerate() {
		return InfiniteSignedDistance, 0.5
	}
	switch e.Kind {
	case Linear:
		return e.linearSignedDistance(p)
	case Quadratic:
		return e.quadraticSignedDistance(p)
	default:
		return e.cubicSignedDistance(p)
	}
}

func (e EdgeSegment) linearSignedDistance(p Vec2) (SignedDistance, float64) {
	aq := p.Sub(e.P0)
	ab := e.P1.Sub(e.P0)
	t := aq.Dot(ab) / ab.LengthSquared()
	tc := clamp01(t)
	closest := lerp(e.P0, e.P1, tc)
	toPoint := p.Sub(closest)
	dist := toPoint.Length() * signOf(ab, toPoint)
	return SignedDistance{Distance: dist, Orthogonality: orthogonality(ab, toPoint)}, tc
}

// quadraticSignedDistance minimises |B(t) - p|^2 by finding the roots of
// its derivative, a cubic in t, in closed form (depressed-cubic /
// trigonometric method), then compares candidate distances at the roots
// and at the endpoints.
func (e EdgeSegment) quadraticSignedDistance(p Vec2) (SignedDistance, float64) {
	qa := e.P0.Sub(p)
	ab := e.Control0.Sub(e.P0)
	br := e.P1.Sub(e.Control0).Sub(ab)

	a := br.Dot(br)
	b := 3 * ab.Dot(br)
	c := 2*ab.Dot(ab) + qa.Dot(br)
	d := qa.Dot(ab)

	roots := make([]float64, 0, 3)
	if math.Abs(a) < 1e-14 {
		roots = append(roots, solveQuadraticReal(b, c, d)...)
	} else {
		roots = append(roots, solveCubicReal(b/a, c/a, d/a)...)
	}
	roots = append(roots, 0, 1)

	best := InfiniteSignedDistance
	bestT := 0.5
	for _, t := range roots {
		tc := clamp01(t)
		closest := e.Point(tc)
		toPoint := p.Sub(closest)
		tangent := e.Direction(tc)
		if tangent.LengthSquared() < degenerateLengthThreshold {
			// cusp: fall back to chord direction
			tangent = e.P1.Sub(e.P0)
		}
		sd := SignedDistance{
			Distance:      toPoint.Length() * signOf(tangent, toPoint),
			Orthogonality: orthogonality(tangent, toPoint),
		}
		if sd.Less(best) {
			best = sd
			bestT = tc
		}
	}
	return best, bestT
}

// cubicSignedDistance minimises |B(t) - p|^2, whose derivative is a
// quintic in t. Closed-form quintic roots are impractical, so the minimum
// is found with Newton-Raphson refinement seeded from a coarse sampling
// of the curve, the small-solver approach the spec calls for.
func (e EdgeSegment) cubicSignedDistance(p Vec2) (SignedDistance, float64) {
	const seeds = 12
	const newtonIters = 8

	best := InfiniteSignedDistance
	bestT := 0.0
	consider := func(t float64) {
		tc := clamp01(t)
		closest := e.Point(tc)
		toPoint := p.Sub(closest)
		tangent := e.Direction(tc)
		if tangent.LengthSquared() < degenerateLengthThreshold {
			tangent = e.P1.Sub(e.P0)
		}
		sd := SignedDistance{
			Distance:      toPoint.Length() * signOf(tangent, toPoint),
			Orthogonality: orthogonality(tangent, toPoint),
		}
		if sd.Less(best) {
			best = sd
			bestT = tc
		}
	}

	for i := 0; i <= seeds; i++ {
		t0 := float64(i) / seeds
		t := t0
		for j := 0; j < newtonIters; j++ {
			pt := e.Point(t)
			d1 := e.Direction(t)
			d2 := e.secondDerivative(t)
			diff := pt.Sub(p)
			denom := d1.Dot(d1) + diff.Dot(d2)
			if math.Abs(denom) < 1e-12 {
				break
			}
			num := diff.Dot(d1)
			step := num / denom
			t -= step
			if t < -1 || t > 2 {
				break
			}
		}
		consider(t)
	}
	consider(0)
	consider(1)
	return best, bestT
}

func (e EdgeSegment) secondDerivative(t float64) Vec2 {
	switch e.Kind {
	case Cubic:
		omt := 1 - t
		// d2/dt2 B3(t) = 6(1-t)(C1-2C0+P0) + 6t(P1-2C1+C0)
		p0 := e.Control1.Sub(e.Control0.Mul(2)).Add(e.P0)
		p1 := e.P1.Sub(e.Control1.Mul(2)).Add(e.Control0)
		return p0.Mul(6 * omt).Add(p1.Mul(6 * t))
	default:
		return Vec2{}
	}
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

// DistanceToPerpendicular replaces sd with the perpendicular distance to
// the tangent line at t (0 or 1), used only when p lies within the
// tangent's half-plane beyond the corresponding endpoint. This is what
// keeps channels continuous across shared endpoints.
func (e EdgeSegment) DistanceToPerpendicular(sd SignedDistance, p Vec2, t float64) SignedDistance {
	if t >= 0 && t <= 1 {
		return sd
	}
	var endpoint Vec2
	if t < 0 {
		endpoint = e.P0
	} else {
		endpoint = e.P1
	}
	tangent := e.Direction(clamp01(t)).Normalize()
	if tangent == (Vec2{}) {
		return sd
	}
	toPoint := p.Sub(endpoint)
	// projection of toPoint onto tangent must point further outward
	// (beyond the endpoint) for the perpendicular distance to apply.
	along := toPoint.Dot(tangent)
	if (t < 0 && along > 0) || (t > 1 && along < 0) {
		return sd
	}
	perp := toPoint.Sub(tangent.Mul(along))
	dist := perp.Length() * signOf(tangent, toPoint)
	return SignedDistance{Distance: dist, Orthogonality: orthogonality(tangent, toPoint)}
}

// SplitInThirds divides the edge into three equal-parameter segments of
// the same Kind. Required so that single-edge contours have at least
// three edges for colouring.
func (e EdgeSegment) SplitInThirds() [3]EdgeSegment {
	var out [3]EdgeSegment
	switch e.Kind {
	case Linear:
		a := e.Point(1.0 / 3)
		b := e.Point(2.0 / 3)
		out[0] = NewLinear(e.P0, a)
		out[1] = NewLinear(a, b)
		out[2] = NewLinear(b, e.P1)
	case Quadratic:
		// De Casteljau subdivision at 1/3, then split the remaining
		// two-thirds evenly.
		p0, c, p1 := e.P0, e.Control0, e.P1
		a0, a1, a2, b0, b1, b2 := subdivideQuadratic(p0, c, p1, 1.0/3)
		mid0, mid1, mid2, tail0, tail1, tail2 := subdivideQuadratic(b0, b1, b2, 0.5)
		out[0] = NewQuadratic(a0, a1, a2)
		out[1] = NewQuadratic(mid0, mid1, mid2)
		out[2] = NewQuadratic(tail0, tail1, tail2)
	default:
		p0, c0, c1, p1 := e.P0, e.Control0, e.Control1, e.P1
		la0, la1, la2, la3, lb0, lb1, lb2, lb3 := subdivideCubic(p0, c0, c1, p1, 1.0/3)
		out[0] = NewCubic(la0, la1, la2, la3)
		ma0, ma1, ma2, ma3, mb0, mb1, mb2, mb3 := subdivideCubic(lb0, lb1, lb2, lb3, 0.5)
		out[1] = NewCubic(ma0, ma1, ma2, ma3)
		out[2] = NewCubic(mb0, mb1, mb2, mb3)
	}
	for i := range out {
		out[i].Color = e.Color
	}
	return out
}

func subdivideQuadratic(p0, c, p1 Vec2, t float64) (a0, a1, a2, b0, b1, b2 Vec2) {
	p01 := lerp(p0, c, t)
	p12 := lerp(c, p1, t)
	p012 := lerp(p01, p12, t)
	return p0, p01, p012, p012, p12, p1
}

func subdivideCubic(p0, c0, c1, p1 Vec2, t float64) (a0, a1, a2, a3, b0, b1, b2, b3 Vec2) {
	p01 := lerp(p0, c0, t)
	p12 := lerp(c0, c1, t)
	p23 := lerp(c1, p1, t)
	p012 := lerp(p01, p12, t)
	p123 := lerp(p12, p23, t)
	p0123 := lerp(p012, p123, t)
	return p0, p01, p012, p0123, p0123, p123, p23, p1
}

// Bounds returns the axis-aligned bounding box of the edge's control
// polygon, which is a conservative (not tight) bound for curved edges.
func (e EdgeSegment) Bounds() (min, max Vec2) {
	min = Vec2{math.Min(e.P0.X, e.P1.X), math.Min(e.P0.Y, e.P1.Y)}
	max = Vec2{math.Max(e.P0.X, e.P1.X), math.Max(e.P0.Y, e.P1.Y)}
	if e.Kind != Linear {
		min.X, max.X = math.Min(min.X, e.Control0.X), math.Max(max.X, e.Control0.X)
		min.Y, max.Y = math.Min(min.Y, e.Control0.Y), math.Max(max.Y, e.Control0.Y)
	}
	if e.Kind == Cubic {
		min.X, max.X = math.Min(min.X, e.Control1.X), math.Max(max.X, e.Control1.X)
		min.Y, max.Y = math.Min(min.Y, e.Control1.Y), math.Max(max.Y, e.Control1.Y)
	}
	return min, max
}

// Reverse returns the edge with its parametrisation direction flipped.
func (e EdgeSegment) Reverse() EdgeSegment {
	switch e.Kind {
	case Linear:
		return EdgeSegment{Kind: Linear, P0: e.P1, P1: e.P0, Color: e.Color}
	case Quadratic:
		return EdgeSegment{Kind: Quadratic, P0: e.P1, Control0: e.Control0, P1: e.P0, Color: e.Color}
	default:
		return EdgeSegment{Kind: Cubic, P0: e.P1, Control0: e.Control1, Control1: e.Control0, P1: e.P0, Color: e.Color}
	}
}

// Intersection is one scan-line/edge crossing: the crossing's x
// coordinate and its direction (+1 downward, -1 upward) as seen in the
// shape's Y convention.
type Intersection struct {
	X         float64
	Direction int
}

// ScanLineIntersections appends the x-crossings of the horizontal line
// y=y against this edge, each tagged with crossing direction. Only
// Linear edges are expected at this stage (scan-line passes run after
// boolean flattening), but curved edges are handled by approximating them
// with 16 chords at uniform parameter steps so the routine stays total.
func (e EdgeSegment) ScanLineIntersections(y float64, out []Intersection) []Intersection {
	if e.Kind == Linear {
		return appendLinearCrossing(out, e.P0, e.P1, y)
	}
	const steps = 16
	prev := e.P0
	for i := 1; i <= steps; i++ {
		cur := e.Point(float64(i) / steps)
		out = appendLinearCrossing(out, prev, cur, y)
		prev = cur
	}
	return out
}

func appendLinearCrossing(out []Intersection, p0, p1 Vec2, y float64) []Intersection {
	if p0.Y == p1.Y {
		return out
	}
	if (y < p0.Y && y < p1.Y) || (y >= p0.Y && y >= p1.Y) {
		return out
	}
	t := (y - p0.Y) / (p1.Y - p0.Y)
	x := p0.X + t*(p1.X-p0.X)
	dir := 1
	if p1.Y < p0.Y {
		dir = -1
	}
	return append(out, Intersection{X: x, Direction: dir})
}
