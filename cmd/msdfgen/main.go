// Command msdfgen renders a multi-channel signed distance field bitmap
// for a single TTF glyph or a sprite path description, and writes it out
// as a PNG atlas.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nozgames/msdfgen"
	"github.com/nozgames/msdfgen/config"
	"github.com/nozgames/msdfgen/fontimport"
	"github.com/nozgames/msdfgen/geom"
	"github.com/nozgames/msdfgen/spriteimport"
)

const helpBanner = `msdfgen - multi-channel signed distance field generator

Usage:
  msdfgen -font FILE -char C -out FILE [flags]
  msdfgen -sprite FILE -out FILE [flags]

Flags:
`

func main() {
	log.SetFlags(0)

	var (
		fontPath   = flag.String("font", "", "path to a TTF font file")
		char       = flag.String("char", "", "single rune to render from -font")
		spritePath = flag.String("sprite", "", "path to a sprite path JSON description")
		outPath    = flag.String("out", "out.png", "output PNG path")
		rng        = flag.Float64("range", 0, "distance range in shape units, 0 uses the config default")
		scale      = flag.Float64("scale", 0, "pixels per shape unit, 0 uses the config default")
		width      = flag.Int("width", 32, "output bitmap width in pixels (glyph mode only)")
		height     = flag.Int("height", 32, "output bitmap height in pixels (glyph mode only)")
		configPath = flag.String("config", "", "path to a TOML generator config file")
		workers    = flag.Int("workers", runtime.NumCPU(), "row-parallel worker count")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("msdfgen: loading config: %v", err)
		}
	}
	cfg.Workers = *workers
	if *rng > 0 {
		cfg.Range = *rng
	}
	if *scale > 0 {
		cfg.ScalePixelsPerUnit = *scale
	}

	var err error
	switch {
	case *fontPath != "":
		err = renderGlyph(*fontPath, *char, *outPath, *width, *height, cfg)
	case *spritePath != "":
		err = renderSprite(*spritePath, *outPath, cfg)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("msdfgen: %v", err)
	}
}

func renderGlyph(fontPath, char, outPath string, width, height int, cfg config.GeneratorConfig) error {
	if len([]rune(char)) != 1 {
		return fmt.Errorf("-char must be exactly one rune, got %q", char)
	}
	r := []rune(char)[0]

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return fmt.Errorf("reading font: %w", err)
	}
	f, err := fontimport.ParseFont(data)
	if err != nil {
		return fmt.Errorf("parsing font: %w", err)
	}

	scale := geom.Vec2{X: cfg.ScalePixelsPerUnit, Y: cfg.ScalePixelsPerUnit}
	translate := geom.Vec2{}
	bmp, err := msdfgen.GenerateForGlyph(f, r, width, height, cfg.Range, scale, translate, cfg)
	if err != nil {
		return fmt.Errorf("generating glyph: %w", err)
	}
	metrics := metricsSidecar{
		Width: bmp.Width, Height: bmp.Height,
		Range: cfg.Range, Scale: cfg.ScalePixelsPerUnit,
		Glyph: &glyphMetrics{Rune: r},
	}
	if err := writeMetrics(outPath, metrics); err != nil {
		return err
	}
	return writePNG(outPath, bmp)
}

// spriteFile is the on-disk JSON shape of a sprite path description:
// an ordered list of paths, each a closed ring of anchors with a
// curvature hint, plus whether the path subtracts from the
// accumulated shape.
type spriteFile struct {
	Paths []struct {
		Subtract bool `json:"subtract"`
		Anchors  []struct {
			X         float64 `json:"x"`
			Y         float64 `json:"y"`
			Curvature float64 `json:"curvature"`
		} `json:"anchors"`
	} `json:"paths"`
}

func renderSprite(spritePath, outPath string, cfg config.GeneratorConfig) error {
	data, err := os.ReadFile(spritePath)
	if err != nil {
		return fmt.Errorf("reading sprite file: %w", err)
	}
	var sf spriteFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parsing sprite file: %w", err)
	}

	paths := make([]spriteimport.Path, len(sf.Paths))
	for i, p := range sf.Paths {
		anchors := make([]spriteimport.Anchor, len(p.Anchors))
		for j, a := range p.Anchors {
			anchors[j] = spriteimport.Anchor{Pos: geom.Vec2{X: a.X, Y: a.Y}, Curvature: a.Curvature}
		}
		paths[i] = spriteimport.Path{Anchors: anchors, Subtract: p.Subtract}
	}

	bmp, bounds, err := msdfgen.GenerateForSprite(paths, cfg.ScalePixelsPerUnit, cfg.Range, cfg)
	if err != nil {
		return fmt.Errorf("generating sprite: %w", err)
	}
	log.Printf("sprite bounds: (%.2f, %.2f) - (%.2f, %.2f)", bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	metrics := metricsSidecar{
		Width: bmp.Width, Height: bmp.Height,
		Range: cfg.Range, Scale: cfg.ScalePixelsPerUnit,
		Sprite: &spriteMetrics{
			Min: [2]float64{bounds.Min.X, bounds.Min.Y},
			Max: [2]float64{bounds.Max.X, bounds.Max.Y},
		},
	}
	if err := writeMetrics(outPath, metrics); err != nil {
		return err
	}
	return writePNG(outPath, bmp)
}

// metricsSidecar is the small JSON document written alongside every PNG
// atlas, recording the numbers a runtime needs to map the bitmap back
// into shape space: the pixel dimensions, the distance range and pixel
// scale used to generate it, and whichever of Glyph or Sprite describes
// the source.
type metricsSidecar struct {
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Range  float64        `json:"range"`
	Scale  float64        `json:"scale"`
	Glyph  *glyphMetrics  `json:"glyph,omitempty"`
	Sprite *spriteMetrics `json:"sprite,omitempty"`
}

type glyphMetrics struct {
	Rune rune `json:"rune"`
}

type spriteMetrics struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
}

// metricsPath derives the sidecar path from the PNG output path by
// swapping its extension for .json, e.g. "out.png" -> "out.json".
func metricsPath(outPath string) string {
	ext := filepath.Ext(outPath)
	return strings.TrimSuffix(outPath, ext) + ".json"
}

func writeMetrics(outPath string, m metricsSidecar) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metrics: %w", err)
	}
	if err := os.WriteFile(metricsPath(outPath), data, 0o644); err != nil {
		return fmt.Errorf("writing metrics sidecar: %w", err)
	}
	return nil
}

func writePNG(path string, bmp *msdfgen.Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, bmp.ToRGBA()); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
