package geom

// Shape is a list of contours plus the axis convention of the space it
// was imported from. InverseYAxis is true for TTF glyph outlines (Y-up)
// and false for sprite paths (already screen-space Y-down).
type Shape struct {
	Contours     []Contour
	InverseYAxis bool
}

// ReverseAllContours returns a Shape with every contour's direction
// flipped. Applying this twice returns a shape identical to the original.
func (s Shape) ReverseAllContours() Shape {
	out := Shape{Contours: make([]Contour, len(s.Contours)), InverseYAxis: s.InverseYAxis}
	for i, c := range s.Contours {
		out.Contours[i] = c.Reverse()
	}
	return out
}

// IsEmpty reports whether the shape has no contours.
func (s Shape) IsEmpty() bool { return len(s.Contours) == 0 }

// Bounds returns the axis-aligned bounding box of every contour combined.
// The second return value is false for an empty shape.
func (s Shape) Bounds() (min, max Vec2, ok bool) {
	for i, c := range s.Contours {
		cmin, cmax := c.Bounds()
		if i == 0 {
			min, max = cmin, cmax
		} else {
			min = Vec2{minF(min.X, cmin.X), minF(min.Y, cmin.Y)}
			max = Vec2{maxF(max.X, cmax.X), maxF(max.Y, cmax.Y)}
		}
	}
	return min, max, len(s.Contours) > 0
}
