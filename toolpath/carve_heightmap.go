package toolpath

import (
	"github.com/jfechete/ncgen/heightmap"
	"github.com/jfechete/ncgen/internal/numeric"
	"github.com/jfechete/ncgen/ncerr"
	"github.com/jfechete/ncgen/partition"
)

// Axis selects which pixel axis a heightmap carve sweeps continuously;
// the other axis is the one partition.Partition groups into bands.
type Axis int

const (
	// AxisRows carves continuously along x, one band per group of rows.
	AxisRows Axis = iota
	// AxisColumns carves continuously along y, one band per group of columns.
	AxisColumns
)

// CarveHeightmap emits a multi-pass carve of hm along axis, scaling every
// sample's [0,1] height into [minDepthMM, d] for each pass depth d. strategy
// expands maxDepthMM into the per-pass depth sequence; pass nil for
// StepByBitRadius. If bothDirections is set, the same depth sequence is
// then repeated on the opposite axis.
func (g *Generator) CarveHeightmap(hm heightmap.Heightmap, axis Axis, minDepthMM, maxDepthMM float64, strategy DepthSequence, singlePass, bothDirections bool) error {
	if maxDepthMM <= 0 {
		return ncerr.WithContext(ncerr.ErrInvalidArgument, "target depth must be positive, got %v", maxDepthMM)
	}
	if hm.Width() == 0 || hm.Height() == 0 {
		return ncerr.WithContext(ncerr.ErrInvalidArgument, "cannot carve an empty heightmap")
	}
	if singlePass {
		strategy = singlePassSequence
	} else if strategy == nil {
		strategy = StepByBitRadius
	}
	depths := strategy(maxDepthMM, g.bitDiameterMM)

	for _, d := range depths {
		if err := g.carveHeightmapAxis(hm, axis, minDepthMM, d); err != nil {
			return err
		}
	}
	if bothDirections {
		other := AxisColumns
		if axis == AxisColumns {
			other = AxisRows
		}
		for _, d := range depths {
			if err := g.carveHeightmapAxis(hm, other, minDepthMM, d); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Generator) carveHeightmapAxis(hm heightmap.Heightmap, axis Axis, minDepthMM, maxDepthMM float64) error {
	crossCount := hm.Height()
	if axis == AxisColumns {
		crossCount = hm.Width()
	}
	coordsPx := make([]float64, crossCount)
	for i := range coordsPx {
		coordsPx[i] = float64(i)
	}
	bitDiameterPx := g.bitDiameterMM / g.mmPerPixel
	bands, err := partition.Partition(coordsPx, bitDiameterPx)
	if err != nil {
		return err
	}

	reverse := false
	for _, band := range bands {
		cross := make([]int, len(band.Cover))
		for i, c := range band.Cover {
			cross[i] = int(c)
		}
		var samples []heightmap.Sample
		if axis == AxisRows {
			samples = hm.MaxOverRows(cross)
		} else {
			samples = hm.MaxOverColumns(cross)
		}
		if len(samples) == 0 {
			continue
		}
		if reverse {
			reverseSamples(samples)
		}
		g.emitHeightmapBand(axis, band.Probe, samples, minDepthMM, maxDepthMM)
		reverse = !reverse
	}
	return nil
}

func (g *Generator) emitHeightmapBand(axis Axis, probePx float64, samples []heightmap.Sample, minDepthMM, maxDepthMM float64) {
	prec := g.cfg.FloatPrecision
	minSq := g.cfg.MinMoveDistMM * g.cfg.MinMoveDistMM

	probeMM := probePx * g.mmPerPixel
	first := samples[0]
	firstCarveMM := float64(first.Coord) * g.mmPerPixel
	firstDepth := numeric.ScaleUnit(first.Height, minDepthMM, maxDepthMM)

	g.emit("G0 Z%s", formatPlain(g.cfg.HoverHeightMM))
	if axis == AxisRows {
		g.emit("G0 X%s Y%s", formatCoord(firstCarveMM, prec), formatCoord(probeMM, prec))
	} else {
		g.emit("G0 X%s Y%s", formatCoord(probeMM, prec), formatCoord(firstCarveMM, prec))
	}
	g.emit("G1 Z-%s F%s", formatDepth(firstDepth, prec), formatPlain(g.cfg.PlungeFeed))
	g.emit("G1 F%s", formatPlain(g.cfg.TraverseFeed))

	lastCarveMM := firstCarveMM
	for i := 1; i < len(samples); i++ {
		s := samples[i]
		carveMM := float64(s.Coord) * g.mmPerPixel
		depth := numeric.ScaleUnit(s.Height, minDepthMM, maxDepthMM)
		last := i == len(samples)-1
		d := carveMM - lastCarveMM
		if !last && d*d < minSq {
			continue
		}
		if axis == AxisRows {
			g.emit("G1 X%s Z-%s", formatCoord(carveMM, prec), formatDepth(depth, prec))
		} else {
			g.emit("G1 Y%s Z-%s", formatCoord(carveMM, prec), formatDepth(depth, prec))
		}
		lastCarveMM = carveMM
	}
	g.emit("G0 Z%s", formatPlain(g.cfg.HoverHeightMM))
}

func reverseSamples(s []heightmap.Sample) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
