package msdf

import (
	"github.com/nozgames/msdfgen/geom"
)

// Stencil is a one-byte-per-pixel scratch buffer used only during error
// correction. Cross-row races on the protected bit are benign because it
// is only ever OR'ed in (idempotent).
type Stencil struct {
	Width, Height int
	Bits          []uint8
}

const (
	stencilProtected uint8 = 1 << 0
	stencilError     uint8 = 1 << 1
)

// NewStencil allocates a zeroed stencil matching a bitmap's dimensions.
func NewStencil(width, height int) *Stencil {
	return &Stencil{Width: width, Height: height, Bits: make([]uint8, width*height)}
}

func (s *Stencil) idx(x, y int) int { return y*s.Width + x }

func (s *Stencil) protect(x, y int) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return
	}
	s.Bits[s.idx(x, y)] |= stencilProtected
}

func (s *Stencil) isProtected(x, y int) bool {
	return s.Bits[s.idx(x, y)]&stencilProtected != 0
}

// ProtectCorners marks every pixel in a 3x3 neighbourhood around each
// sharp corner vertex with the protected bit, so later passes never
// touch the texels that carry the corner's deliberate channel split.
func ProtectCorners(st *Stencil, shape PreparedShape, p GenerateParams, thresholdRad float64) {
	for _, c := range shape.Contours {
		for _, i := range findCorners(c, thresholdRad) {
			vertex := c.Edges[i].P0
			px, py := shapeToPixel(vertex, p)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					st.protect(px+dx, py+dy)
				}
			}
		}
	}
}

// shapeToPixel inverts the pixel-to-shape-space mapping used by
// Generate, rounding to the nearest pixel, and accounts for the row
// flip applied when InverseYAxis is set.
func shapeToPixel(v geom.Vec2, p GenerateParams) (x, y int) {
	fx := (v.X+p.Translate.X)*p.Scale.X - 0.5
	fy := (v.Y+p.Translate.Y)*p.Scale.Y - 0.5
	x = int(fx + 0.5)
	y = int(fy + 0.5)
	if p.InverseYAxis {
		y = p.Height - 1 - y
	}
	return x, y
}

// ProtectEdges marks every interior pixel that sits on the natural
// boundary between inside and outside (an axial or diagonal neighbour
// disagrees on median sign) with the protected bit.
func ProtectEdges(bmp *Bitmap, st *Stencil) {
	forEachRowParallel(bmp.Height, 0, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < bmp.Width; x++ {
				inside := bmp.Median(x, y) >= 0.5
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := x+dx, y+dy
						if nx < 0 || ny < 0 || nx >= bmp.Width || ny >= bmp.Height {
							continue
						}
						if (bmp.Median(nx, ny) >= 0.5) != inside {
							st.protect(x, y)
							break
						}
					}
				}
			}
		}
	})
}

// FindErrors flags every non-protected pixel whose channels disagree on
// whether a bilinear interpolation step towards a neighbour crosses 0.5:
// when the overall median predicts a crossing but not every individual
// channel crosses in the same step, rendering would interpolate R, G
// and B inconsistently and produce a visible artefact.
func FindErrors(bmp *Bitmap, st *Stencil) {
	forEachRowParallel(bmp.Height, 0, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < bmp.Width; x++ {
				if st.isProtected(x, y) {
					continue
				}
				if hasChannelMismatch(bmp, x, y) {
					st.Bits[st.idx(x, y)] |= stencilError
				}
			}
		}
	})
}

func hasChannelMismatch(bmp *Bitmap, x, y int) bool {
	r, g, b := bmp.At(x, y)
	medianInside := bmp.Median(x, y) >= 0.5

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= bmp.Width || ny >= bmp.Height {
				continue
			}
			nr, ng, nb := bmp.At(nx, ny)
			neighMedianInside := bmp.Median(nx, ny) >= 0.5
			if neighMedianInside == medianInside {
				continue // no crossing expected on this pair
			}
			rCross := (r >= 0.5) != (nr >= 0.5)
			gCross := (g >= 0.5) != (ng >= 0.5)
			bCross := (b >= 0.5) != (nb >= 0.5)
			if !(rCross && gCross && bCross) {
				return true
			}
		}
	}
	return false
}

// ApplyCorrection replaces every error-flagged pixel with R=G=B=median,
// so bilinear interpolation at render time reduces to a single-channel
// signed distance field at that texel.
func ApplyCorrection(bmp *Bitmap, st *Stencil) {
	forEachRowParallel(bmp.Height, 0, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < bmp.Width; x++ {
				if st.Bits[st.idx(x, y)]&stencilError == 0 {
					continue
				}
				m := bmp.Median(x, y)
				bmp.Set(x, y, m, m, m)
			}
		}
	})
}
