package toolpath

import (
	"github.com/jfechete/ncgen/geom"
	"github.com/jfechete/ncgen/ncerr"
)

// CarvePath emits a multi-pass (or single-pass) carve of path to
// targetDepthMM. strategy expands targetDepthMM into the sequence of
// per-pass depths; pass nil to use StepByBitRadius. singlePass, if true,
// overrides strategy and carves directly to targetDepthMM in one pass.
func (g *Generator) CarvePath(path *geom.Path, targetDepthMM float64, strategy DepthSequence, singlePass bool) error {
	if targetDepthMM <= 0 {
		return ncerr.WithContext(ncerr.ErrInvalidArgument, "target depth must be positive, got %v", targetDepthMM)
	}
	if path.Len() == 0 {
		return ncerr.WithContext(ncerr.ErrInvalidArgument, "cannot carve an empty path")
	}
	if singlePass {
		strategy = singlePassSequence
	} else if strategy == nil {
		strategy = StepByBitRadius
	}
	for _, depthMM := range strategy(targetDepthMM, g.bitDiameterMM) {
		g.emitPathPass(path, depthMM)
	}
	return nil
}

func (g *Generator) emitPathPass(path *geom.Path, depthMM float64) {
	prec := g.cfg.FloatPrecision
	minSq := g.cfg.MinMoveDistMM * g.cfg.MinMoveDistMM

	fx, fy := g.toMM(path.At(0).XY())
	g.emit("G0 Z%s", formatPlain(g.cfg.HoverHeightMM))
	g.emit("G0 X%s Y%s", formatCoord(fx, prec), formatCoord(fy, prec))
	g.emit("G1 Z-%s F%s", formatDepth(depthMM, prec), formatPlain(g.cfg.PlungeFeed))
	g.emit("G1 F%s", formatPlain(g.cfg.TraverseFeed))

	lastX, lastY := fx, fy
	for i := 1; i < path.Len(); i++ {
		vx, vy := g.toMM(path.At(i).XY())
		last := i == path.Len()-1
		dx, dy := vx-lastX, vy-lastY
		if !last && dx*dx+dy*dy < minSq {
			continue
		}
		g.emit("G1 X%s Y%s", formatCoord(vx, prec), formatCoord(vy, prec))
		lastX, lastY = vx, vy
	}
	g.emit("G0 Z%s", formatPlain(g.cfg.HoverHeightMM))
}
