// Package spriteimport builds a prepared Shape from sprite vector paths:
// ordered add/subtract anchor rings with per-anchor curvature hints, as
// authored by a vector-path editor. File formats and the editor itself
// are out of scope; this package only consumes already-decoded anchors.
package spriteimport

import (
	"math"

	"github.com/nozgames/msdfgen/boolops"
	"github.com/nozgames/msdfgen/geom"
	"github.com/nozgames/msdfgen/msdf"
)

// Anchor is one vertex of a sprite path: a position plus a curvature
// hint. Curvature near zero yields a straight edge to the next anchor;
// otherwise the edge is a quadratic Bézier whose control point sits on
// the perpendicular bisector, offset by the curvature value.
type Anchor struct {
	Pos       geom.Vec2
	Curvature float64
}

// Path is one closed anchor ring plus whether it subtracts from the
// shape accumulated so far.
type Path struct {
	Anchors  []Anchor
	Subtract bool
}

// straightCurvatureThreshold is the curvature magnitude below which an
// edge is treated as straight rather than quadratic.
const straightCurvatureThreshold = 1e-9

// buildContour turns one closed anchor ring into a Contour. A path with
// fewer than three anchors cannot form a valid closed shape.
func buildContour(anchors []Anchor) (geom.Contour, error) {
	if len(anchors) < 3 {
		return geom.Contour{}, geom.ErrInvalidShape
	}
	n := len(anchors)
	edges := make([]geom.EdgeSegment, n)
	for i := 0; i < n; i++ {
		a := anchors[i]
		b := anchors[(i+1)%n]
		if math.Abs(a.Curvature) < straightCurvatureThreshold {
			edges[i] = geom.NewLinear(a.Pos, b.Pos)
			continue
		}
		mid := a.Pos.Add(b.Pos).Mul(0.5)
		perp := b.Pos.Sub(a.Pos).Orthonormal()
		control := mid.Add(perp.Mul(a.Curvature))
		edges[i] = geom.NewQuadratic(a.Pos, control, b.Pos)
	}
	return geom.Contour{Edges: edges}, nil
}

// BuildShape applies draw-order accumulation: add paths are appended
// directly, each subtract path triggers an immediate difference against
// the shape accumulated so far. A single final union merges any
// remaining overlaps, followed by normalize and edge colouring, so the
// returned Shape is ready for the generator.
func BuildShape(paths []Path, opts boolops.Options, cornerThresholdRad float64) (geom.Shape, error) {
	accumulated := geom.Shape{}
	for _, path := range paths {
		contour, err := buildContour(path.Anchors)
		if err != nil {
			return geom.Shape{}, err
		}
		pathShape := geom.Shape{Contours: []geom.Contour{contour}}
		if path.Subtract {
			accumulated = boolops.Difference(opts, accumulated, pathShape)
		} else {
			accumulated.Contours = append(accumulated.Contours, contour)
		}
	}

	if len(accumulated.Contours) == 0 {
		return geom.Shape{}, nil
	}

	final := boolops.Union(opts, accumulated)
	final = msdf.Normalize(final)
	final = msdf.ColorSimple(final, cornerThresholdRad)
	final.InverseYAxis = false
	return final, nil
}
