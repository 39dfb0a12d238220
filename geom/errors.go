package geom

import "errors"

// ErrInvalidShape is returned by import adapters when the source data
// cannot form a closed contour: an open TTF contour, or a sprite path
// with fewer than three anchors.
var ErrInvalidShape = errors.New("msdfgen: invalid shape")
