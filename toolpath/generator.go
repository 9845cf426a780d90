// Package toolpath implements the toolpath emitter (C7): it turns a traced
// Path or a Heightmap into a textual G-code move program, one command per
// line, following the Prologue/body/Epilogue assembly in GeneratorState.
package toolpath

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jfechete/ncgen/config"
	"github.com/jfechete/ncgen/nclog"
	"github.com/jfechete/ncgen/ncerr"
)

// Generator is the mutable GeneratorState buffer: a prologue, a body of
// emitted moves accumulated by successive carve calls, and an epilogue.
// The zero value is not usable; build one with NewGenerator. A Generator is
// not safe for concurrent use.
type Generator struct {
	cfg           config.Config
	mmPerPixel    float64
	bitDiameterMM float64
	runID         string

	prologue []string
	body     []string
	epilogue []string
}

// NewGenerator builds a Generator for a run carving at the given
// millimetres-per-pixel ratio with a bit of bitDiameterMM. Both must be
// positive.
func NewGenerator(cfg config.Config, mmPerPixel, bitDiameterMM float64) (*Generator, error) {
	if mmPerPixel <= 0 {
		return nil, ncerr.WithContext(ncerr.ErrInvalidArgument, "mm-per-pixel ratio must be positive, got %v", mmPerPixel)
	}
	if bitDiameterMM <= 0 {
		return nil, ncerr.WithContext(ncerr.ErrInvalidArgument, "bit diameter must be positive, got %v", bitDiameterMM)
	}
	g := &Generator{
		cfg:           cfg,
		mmPerPixel:    mmPerPixel,
		bitDiameterMM: bitDiameterMM,
		runID:         uuid.NewString(),
	}
	g.prologue = g.buildPrologue()
	g.epilogue = g.buildEpilogue()
	nclog.Logger().Debug("generator started", "run_id", g.runID, "mm_per_pixel", mmPerPixel, "bit_diameter_mm", bitDiameterMM)
	return g, nil
}

func (g *Generator) buildPrologue() []string {
	prec := g.cfg.FloatPrecision
	return []string{
		"G21",
		fmt.Sprintf("M3 S%s", formatPlain(float64(g.cfg.SpindleRPM))),
		"G90",
		fmt.Sprintf("G0 Z%s", formatPlain(g.cfg.HoverHeightMM)),
		fmt.Sprintf("G0 X%s Y%s", formatCoord(0, prec), formatCoord(0, prec)),
	}
}

func (g *Generator) buildEpilogue() []string {
	prec := g.cfg.FloatPrecision
	return []string{
		fmt.Sprintf("G0 Z%s", formatPlain(g.cfg.HoverHeightMM)),
		fmt.Sprintf("G0 X%s Y%s", formatCoord(0, prec), formatCoord(0, prec)),
		"M5",
		"M30",
	}
}

// emit appends one formatted command line to the body.
func (g *Generator) emit(format string, args ...any) {
	g.body = append(g.body, fmt.Sprintf(format, args...))
}

// toMM converts a pixel coordinate pair to millimetres.
func (g *Generator) toMM(x, y int) (float64, float64) {
	return float64(x) * g.mmPerPixel, float64(y) * g.mmPerPixel
}

// Lines returns the full assembled program: prologue, then every line
// emitted by carve calls so far, then epilogue.
func (g *Generator) Lines() []string {
	out := make([]string, 0, len(g.prologue)+len(g.body)+len(g.epilogue))
	out = append(out, g.prologue...)
	out = append(out, g.body...)
	out = append(out, g.epilogue...)
	return out
}
