package msdf

import (
	"math"

	"github.com/nozgames/msdfgen/geom"
)

// DefaultCornerAngleThreshold is the angle (radians) above which a join
// between two edges is treated as a corner for colouring purposes.
const DefaultCornerAngleThreshold = 3.0

// palette is the fixed rotation used to colour spans between corners.
// The order matters: colorSpans below relies on it to resolve
// wrap-around clashes deterministically.
var palette = [3]geom.ChannelMask{geom.ChannelYellow, geom.ChannelCyan, geom.ChannelMagenta}

// Normalize splits any single-segment contour into three using
// SplitInThirds, so that edge colouring always has at least three edges
// to assign distinct colours across corners.
func Normalize(s geom.Shape) geom.Shape {
	out := geom.Shape{Contours: make([]geom.Contour, len(s.Contours)), InverseYAxis: s.InverseYAxis}
	for i, c := range s.Contours {
		if len(c.Edges) == 1 {
			parts := c.Edges[0].SplitInThirds()
			out.Contours[i] = geom.Contour{Edges: parts[:]}
		} else {
			out.Contours[i] = c
		}
	}
	return out
}

// isCorner reports whether the join from inTangent to outTangent should
// be treated as a corner: either the tangents point 90 degrees or more
// apart (dot product <= 0), or the magnitude of their cross product
// exceeds sin(thresholdRad); at the default 3.0 that is any turn of more
// than about 8 degrees.
func isCorner(inTangent, outTangent geom.Vec2, thresholdRad float64) bool {
	in, out := inTangent.Normalize(), outTangent.Normalize()
	if in.Dot(out) <= 0 {
		return true
	}
	return math.Abs(in.Cross(out)) > math.Sin(thresholdRad)
}

// findCorners returns the indices of edges whose incoming join (from the
// previous edge) is a corner.
func findCorners(c geom.Contour, thresholdRad float64) []int {
	n := len(c.Edges)
	var corners []int
	for i := 0; i < n; i++ {
		prev := c.Edges[(i-1+n)%n]
		cur := c.Edges[i]
		inTangent := prev.Direction(1)
		outTangent := cur.Direction(0)
		if isCorner(inTangent, outTangent, thresholdRad) {
			corners = append(corners, i)
		}
	}
	return corners
}

// ColorSimple assigns a channel mask to every edge of every contour.
// Contours with zero corners are painted a single two-channel colour;
// contours with exactly one corner use symmetrical trichotomy (the
// contour is split into three contiguous thirds); contours with two or
// more corners alternate colours at each corner using a fixed rotation
// that never repeats across adjacent spans and differs across the
// wrap-around seam.
func ColorSimple(s geom.Shape, thresholdRad float64) geom.Shape {
	out := geom.Shape{Contours: make([]geom.Contour, len(s.Contours)), InverseYAxis: s.InverseYAxis}
	for ci, c := range s.Contours {
		edges := make([]geom.EdgeSegment, len(c.Edges))
		copy(edges, c.Edges)
		n := len(edges)

		switch {
		case n == 0:
			// nothing to colour
		default:
			corners := findCorners(c, thresholdRad)
			switch len(corners) {
			case 0:
				for i := range edges {
					edges[i].Color = geom.ChannelCyan
				}
			case 1:
				colorTrichotomy(edges, corners[0])
			default:
				colorSpans(edges, corners)
			}
		}
		out.Contours[ci] = geom.Contour{Edges: edges}
	}
	return out
}

// colorTrichotomy paints three contiguous regions of roughly equal edge
// count, starting at the single corner, with MAGENTA, YELLOW, CYAN.
func colorTrichotomy(edges []geom.EdgeSegment, corner int) {
	n := len(edges)
	colors := [3]geom.ChannelMask{geom.ChannelMagenta, geom.ChannelYellow, geom.ChannelCyan}
	for i := 0; i < n; i++ {
		idx := (corner + i) % n
		region := i * 3 / n
		if region > 2 {
			region = 2
		}
		edges[idx].Color = colors[region]
	}
}

// colorSpans paints the edges between consecutive corners with a single
// colour per span, rotating through the palette.
func colorSpans(edges []geom.EdgeSegment, corners []int) {
	n := len(edges)
	spanCount := len(corners)
	spanColor := make([]geom.ChannelMask, spanCount)
	for i := range spanColor {
		spanColor[i] = palette[i%3]
	}
	// Fix the wrap-around clash: with this fixed rotation, span 0 and
	// the final span collide exactly when spanCount % 3 == 1.
	if spanCount >= 3 && spanCount%3 == 1 {
		spanColor[spanCount-1] = palette[1]
	}

	for span := 0; span < spanCount; span++ {
		start := corners[span]
		var end int
		if span+1 < spanCount {
			end = corners[span+1]
		} else {
			end = corners[0]
		}
		for idx := start; idx != end; idx = (idx + 1) % n {
			edges[idx].Color = spanColor[span]
		}
	}
}
