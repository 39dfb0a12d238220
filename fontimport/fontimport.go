// Package fontimport builds a prepared Shape from a TTF glyph outline:
// on/off-curve contour points, walked per the TrueType convention of
// implicit midpoints between consecutive off-curve points.
package fontimport

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/golang/freetype/truetype"

	"github.com/nozgames/msdfgen/boolops"
	"github.com/nozgames/msdfgen/geom"
	"github.com/nozgames/msdfgen/msdf"
)

// rawPoint is one contour vertex as decoded straight from the glyf
// table, before the implicit-midpoint walk.
type rawPoint struct {
	X, Y    float64
	OnCurve bool
}

func (p rawPoint) vec() geom.Vec2 { return geom.Vec2{X: p.X, Y: p.Y} }

// ParseFont wraps truetype.Parse for callers that only have font bytes.
func ParseFont(data []byte) (*truetype.Font, error) {
	return truetype.Parse(data)
}

// rawContours loads the raw on/off-curve points of every contour of the
// glyph for rune r, in font units (unscaled).
func rawContours(f *truetype.Font, r rune) ([][]rawPoint, error) {
	index := f.Index(r)
	if index == 0 {
		return nil, nil
	}

	var buf truetype.GlyphBuf
	scale := fixed.Int26_6(f.FUnitsPerEm()) << 6
	if err := buf.Load(f, scale, index, font.HintingNone); err != nil {
		return nil, err
	}

	points := make([]rawPoint, len(buf.Point))
	for i, p := range buf.Point {
		points[i] = rawPoint{
			X:       float64(p.X) / 64,
			Y:       float64(p.Y) / 64,
			OnCurve: p.Flags&0x01 != 0,
		}
	}

	contours := make([][]rawPoint, len(buf.End))
	start := 0
	for i, end := range buf.End {
		contours[i] = points[start:end]
		start = end
	}
	return contours, nil
}

// withImplicitMidpoints inserts an on-curve point at the midpoint of
// every pair of consecutive off-curve points, the TTF convention for
// representing a run of quadratic segments without repeating on-curve
// anchors.
func withImplicitMidpoints(raw []rawPoint) []rawPoint {
	n := len(raw)
	extended := make([]rawPoint, 0, n*2)
	for i := 0; i < n; i++ {
		cur := raw[i]
		extended = append(extended, cur)
		next := raw[(i+1)%n]
		if !cur.OnCurve && !next.OnCurve {
			extended = append(extended, rawPoint{
				X:       (cur.X + next.X) / 2,
				Y:       (cur.Y + next.Y) / 2,
				OnCurve: true,
			})
		}
	}
	return extended
}

// buildContour walks one glyph contour's raw points into a closed
// sequence of Linear and Quadratic edges, starting at the first
// on-curve point (the implicit-midpoint insertion above guarantees one
// exists even when every raw point is off-curve).
func buildContour(raw []rawPoint) (geom.Contour, error) {
	if len(raw) == 0 {
		return geom.Contour{}, nil
	}
	extended := withImplicitMidpoints(raw)
	m := len(extended)

	start := -1
	for i, p := range extended {
		if p.OnCurve {
			start = i
			break
		}
	}
	if start < 0 {
		return geom.Contour{}, geom.ErrInvalidShape
	}

	ordered := make([]rawPoint, m)
	for i := 0; i < m; i++ {
		ordered[i] = extended[(start+i)%m]
	}

	var edges []geom.EdgeSegment
	cur := ordered[0].vec()
	idx := 0
	steps := 0
	for steps < m {
		nextIdx := (idx + 1) % m
		p := ordered[nextIdx]
		if p.OnCurve {
			edges = append(edges, geom.NewLinear(cur, p.vec()))
			cur = p.vec()
			idx = nextIdx
			steps++
			continue
		}
		afterIdx := (idx + 2) % m
		after := ordered[afterIdx]
		edges = append(edges, geom.NewQuadratic(cur, p.vec(), after.vec()))
		cur = after.vec()
		idx = afterIdx
		steps += 2
	}

	if len(edges) == 0 {
		return geom.Contour{}, geom.ErrInvalidShape
	}
	return geom.Contour{Edges: edges}, nil
}

// BuildShape loads every contour of the glyph for rune r, walks each
// into Linear/Quadratic edges, then applies union, normalize and edge
// colouring so the result is ready for the generator. TTF is Y-up, so
// InverseYAxis is always set.
func BuildShape(f *truetype.Font, r rune, opts boolops.Options, cornerThresholdRad float64) (geom.Shape, error) {
	raw, err := rawContours(f, r)
	if err != nil {
		return geom.Shape{}, err
	}
	if len(raw) == 0 {
		return geom.Shape{}, nil
	}

	contours := make([]geom.Contour, 0, len(raw))
	for _, rc := range raw {
		c, err := buildContour(rc)
		if err != nil {
			return geom.Shape{}, err
		}
		if len(c.Edges) == 0 {
			continue
		}
		contours = append(contours, c)
	}
	if len(contours) == 0 {
		return geom.Shape{}, nil
	}

	glyphShape := geom.Shape{Contours: contours}
	final := boolops.Union(opts, glyphShape)
	final = msdf.Normalize(final)
	final = msdf.ColorSimple(final, cornerThresholdRad)
	final.InverseYAxis = true
	return final, nil
}
