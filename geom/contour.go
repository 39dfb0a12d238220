package geom

// Contour is an ordered, closed sequence of edge segments. Adjacent
// segments (including the wrap from the last to the first) must share an
// endpoint exactly once the contour has been prepared.
type Contour struct {
	Edges []EdgeSegment
}

// IsClosed reports whether the last edge's endpoint matches the first
// edge's start point within tolerance, wrapping at the last segment.
func (c Contour) IsClosed(tolerance float64) bool {
	if len(c.Edges) == 0 {
		return true
	}
	first := c.Edges[0].P0
	last := c.Edges[len(c.Edges)-1].P1
	return last.Sub(first).LengthSquared() <= tolerance*tolerance
}

// Winding returns the sign of the contour's shoelace sum, sampling each
// edge at its endpoints. Positive means clockwise in the generator's
// coordinate convention.
func (c Contour) Winding() int {
	if len(c.Edges) == 0 {
		return 0
	}
	var sum float64
	for _, e := range c.Edges {
		a, b := e.P0, e.P1
		sum += (b.X - a.X) * (a.Y + b.Y)
	}
	switch {
	case sum > 0:
		return 1
	case sum < 0:
		return -1
	default:
		return 0
	}
}

// Reverse returns the contour traversed in the opposite direction: edges
// reversed individually and the edge order flipped.
func (c Contour) Reverse() Contour {
	n := len(c.Edges)
	out := make([]EdgeSegment, n)
	for i, e := range c.Edges {
		out[n-1-i] = e.Reverse()
	}
	return Contour{Edges: out}
}

// Bounds returns the axis-aligned bounding box covering every edge.
func (c Contour) Bounds() (min, max Vec2) {
	if len(c.Edges) == 0 {
		return Vec2{}, Vec2{}
	}
	min, max = c.Edges[0].Bounds()
	for _, e := range c.Edges[1:] {
		emin, emax := e.Bounds()
		min = Vec2{minF(min.X, emin.X), minF(min.Y, emin.Y)}
		max = Vec2{maxF(max.X, emax.X), maxF(max.Y, emax.Y)}
	}
	return min, max
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
