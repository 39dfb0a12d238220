package geom

import "math"

// SignedDistance is a (distance, orthogonality) pair used to order
// candidate edges when selecting the closest one to a query point.
// Ordering is lexicographic on (|distance|, orthogonality): a closer
// distance always wins; among ties, greater orthogonality wins.
type SignedDistance struct {
	Distance      float64
	Orthogonality float64
}

// InfiniteSignedDistance is the distance reported by a degenerate edge
// (zero length) that cannot contribute a meaningful distance.
var InfiniteSignedDistance = SignedDistance{Distance: math.Inf(1), Orthogonality: 1}

// Less reports whether sd is strictly closer than other.
func (sd SignedDistance) Less(other SignedDistance) bool {
	ad, ao := math.Abs(sd.Distance), math.Abs(other.Distance)
	if ad != ao {
		return ad < ao
	}
	return sd.Orthogonality > other.Orthogonality
}
