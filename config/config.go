// Package config loads generator tuning parameters from a TOML file, in
// the same style the rest of the ambient stack uses for small,
// flat configuration documents.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// GeneratorConfig holds the parameters recognised by both
// generate_msdf_for_sprite and generate_msdf_for_glyph.
type GeneratorConfig struct {
	// CurveTessellationSteps is the number of line samples per curved
	// edge during boolean flattening.
	CurveTessellationSteps int `toml:"curve_tessellation_steps"`
	// CornerAngleThresholdRad is the angle above which a join is
	// treated as a corner for edge colouring.
	CornerAngleThresholdRad float64 `toml:"corner_angle_threshold_rad"`
	// PrecisionDigits is the number of decimal digits preserved by the
	// boolean engine.
	PrecisionDigits int `toml:"precision_digits"`
	// Range is the default distance, in shape units, at which the
	// field saturates.
	Range float64 `toml:"range"`
	// ScalePixelsPerUnit is the default pixels-per-shape-unit scale
	// used when a caller does not supply an explicit scale.
	ScalePixelsPerUnit float64 `toml:"scale_pixels_per_unit"`
	// Workers is the row-parallel fan-out. Zero means runtime.NumCPU().
	Workers int `toml:"workers"`
}

// Default returns the documented default configuration.
func Default() GeneratorConfig {
	return GeneratorConfig{
		CurveTessellationSteps:  16,
		CornerAngleThresholdRad: 3.0,
		PrecisionDigits:         6,
		Range:                   2,
		ScalePixelsPerUnit:      32,
		Workers:                 0,
	}
}

// Load reads a TOML configuration file, starting from Default() so any
// field the file omits keeps its documented default.
func Load(path string) (GeneratorConfig, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return GeneratorConfig{}, err
	}
	return cfg, nil
}
