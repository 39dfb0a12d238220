// Package msdfgen generates multi-channel signed distance field bitmaps
// from sprite vector paths and TTF glyph outlines, for sharp
// resolution-independent rendering via median reconstruction.
package msdfgen

import (
	"math"

	"github.com/golang/freetype/truetype"

	"github.com/nozgames/msdfgen/boolops"
	"github.com/nozgames/msdfgen/config"
	"github.com/nozgames/msdfgen/fontimport"
	"github.com/nozgames/msdfgen/geom"
	"github.com/nozgames/msdfgen/msdf"
	"github.com/nozgames/msdfgen/spriteimport"
)

// ErrInvalidShape is returned when the imported glyph data produces an
// open contour, or a sprite path has fewer than three anchors.
var ErrInvalidShape = geom.ErrInvalidShape

// Bitmap is the packed RGB output of a generation call, plus whether the
// source shape was empty (a valid, all-outside result, not an error).
type Bitmap = msdf.Bitmap

// Bounds is the shape-space extent a sprite generation call computed its
// output bitmap over.
type Bounds struct {
	Min, Max geom.Vec2
}

func optionsFrom(cfg config.GeneratorConfig) boolops.Options {
	return boolops.Options{
		TessellationSteps: cfg.CurveTessellationSteps,
		PrecisionDigits:   cfg.PrecisionDigits,
	}
}

func cornerThreshold(cfg config.GeneratorConfig) float64 {
	if cfg.CornerAngleThresholdRad > 0 {
		return cfg.CornerAngleThresholdRad
	}
	return msdf.DefaultCornerAngleThreshold
}

// runPipeline takes a prepared, already-coloured Shape through
// generate -> sign-correct -> error-correct, the phase order the whole
// pipeline always runs in.
func runPipeline(shape geom.Shape, p msdf.GenerateParams, cfg config.GeneratorConfig) *Bitmap {
	prepared := msdf.Prepare(shape)
	bmp := msdf.Generate(prepared, p)
	if bmp.Empty {
		return bmp
	}

	msdf.SignCorrect(bmp, prepared, p)

	stencil := msdf.NewStencil(p.Width, p.Height)
	msdf.ProtectCorners(stencil, prepared, p, cornerThreshold(cfg))
	msdf.ProtectEdges(bmp, stencil)
	msdf.FindErrors(bmp, stencil)
	msdf.ApplyCorrection(bmp, stencil)

	return bmp
}

// GenerateForSprite builds a Shape from ordered add/subtract paths and
// renders it at the given pixel density. The output bitmap is sized to
// the shape's bounds (padded by one range on each side) and Bounds
// reports the shape-space rectangle that maps onto it.
func GenerateForSprite(paths []spriteimport.Path, pixelsPerUnit, rng float64, cfg config.GeneratorConfig) (*Bitmap, Bounds, error) {
	opts := optionsFrom(cfg)
	shape, err := spriteimport.BuildShape(paths, opts, cornerThreshold(cfg))
	if err != nil {
		return nil, Bounds{}, err
	}
	if shape.IsEmpty() {
		return &Bitmap{Empty: true}, Bounds{}, nil
	}

	min, max, _ := shape.Bounds()
	margin := geom.Vec2{X: rng, Y: rng}
	translate := geom.Vec2{X: margin.X - min.X, Y: margin.Y - min.Y}
	width := int(math.Ceil((max.X-min.X+2*margin.X)*pixelsPerUnit)) + 1
	height := int(math.Ceil((max.Y-min.Y+2*margin.Y)*pixelsPerUnit)) + 1

	params := msdf.GenerateParams{
		Width:        width,
		Height:       height,
		Range:        rng,
		Scale:        geom.Vec2{X: pixelsPerUnit, Y: pixelsPerUnit},
		Translate:    translate,
		InverseYAxis: false,
		Workers:      cfg.Workers,
	}

	bmp := runPipeline(shape, params, cfg)
	return bmp, Bounds{Min: min, Max: max}, nil
}

// GenerateForGlyph builds a Shape from a single TTF glyph outline and
// renders it into a width x height bitmap using the given scale and
// translate (pixel-to-shape-space mapping: shape_pos = (pixel+0.5)/scale
// - translate).
func GenerateForGlyph(f *truetype.Font, r rune, width, height int, rng float64, scale, translate geom.Vec2, cfg config.GeneratorConfig) (*Bitmap, error) {
	opts := optionsFrom(cfg)
	shape, err := fontimport.BuildShape(f, r, opts, cornerThreshold(cfg))
	if err != nil {
		return nil, err
	}
	if shape.IsEmpty() {
		return &Bitmap{Empty: true}, nil
	}

	params := msdf.GenerateParams{
		Width:        width,
		Height:       height,
		Range:        rng,
		Scale:        scale,
		Translate:    translate,
		InverseYAxis: true,
		Workers:      cfg.Workers,
	}

	return runPipeline(shape, params, cfg), nil
}
