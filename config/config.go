// Package config bundles the process-wide constants (spindle RPM, feed
// rates, hover height, dot pixel size, GIF frame rate) that would otherwise
// sit as module-level globals into a single immutable record, so every
// consumer takes a Config value explicitly rather than reading shared
// mutable state.
package config

// Config bundles every tunable constant used by the toolpath emitter and
// the optional visualizer. Zero value is not meaningful; use Default().
type Config struct {
	// SpindleRPM is the commanded spindle speed, M3 S<rpm>.
	SpindleRPM int
	// HoverHeightMM is the safe Z height for non-cutting moves.
	HoverHeightMM float64
	// PlungeFeed is the feed rate (mm/min) for vertical plunge moves.
	PlungeFeed float64
	// TraverseFeed is the feed rate (mm/min) for horizontal cutting moves.
	TraverseFeed float64
	// DefaultDepthStepMM is the fixed per-pass depth increment used by the
	// StepByFixedDepth strategy.
	DefaultDepthStepMM float64
	// FloatPrecision is the number of fractional digits emitted for every
	// coordinate and depth value.
	FloatPrecision int
	// MinMoveDistMM is the minimum XY distance between consecutive emitted
	// vertices; shorter intermediate moves are dropped as noise.
	MinMoveDistMM float64
	// DotPixelSize is the diameter, in pixels, of the filled disc stamped
	// by the visualizer for each rendered point.
	DotPixelSize int
	// GIFFPS is the frame rate used when assembling an animated preview.
	GIFFPS int
	// MaxGIFLineFrames caps the number of frames captured for a single
	// path's animation, spacing captures evenly across its vertices.
	MaxGIFLineFrames int
}

// Default returns the stock constants: 10000 RPM spindle, 1mm hover,
// 250/750 mm-per-min plunge/traverse feeds, 0.5mm default depth step,
// 3-decimal coordinate precision.
func Default() Config {
	return Config{
		SpindleRPM:         10000,
		HoverHeightMM:      1,
		PlungeFeed:         250,
		TraverseFeed:       750,
		DefaultDepthStepMM: 0.5,
		FloatPrecision:     3,
		MinMoveDistMM:      0,
		DotPixelSize:       5,
		GIFFPS:             60,
		MaxGIFLineFrames:   120,
	}
}
