// Command ncgen converts a raster image into a G-code toolpath: either
// tracing line art into cut paths, or carving a grayscale image as a
// heightmap.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/jfechete/ncgen/config"
	"github.com/jfechete/ncgen/heightmap"
	"github.com/jfechete/ncgen/imgio"
	"github.com/jfechete/ncgen/nclog"
	"github.com/jfechete/ncgen/pathbuild"
	"github.com/jfechete/ncgen/simplify"
	"github.com/jfechete/ncgen/skeleton"
	"github.com/jfechete/ncgen/toolpath"
	"github.com/jfechete/ncgen/viz"
)

type flags struct {
	mode          string
	in, out       string
	gifOut        string
	mmSize        float64
	bitDiameter   float64
	targetDepth   float64
	minPathLength int
	tolerance     float64
	threshold     int
	invert        bool
	axis          string
	depthStep     string
	fixedStepMM   float64
	singlePass    bool
	bothDirs      bool
	verbose       bool
}

func main() {
	defaults := config.Default()

	var f flags
	flag.StringVar(&f.mode, "mode", "line", "carve mode: line or heightmap")
	flag.StringVar(&f.in, "in", "", "input image path")
	flag.StringVar(&f.out, "out", "", "output G-code file path")
	flag.StringVar(&f.gifOut, "gif", "", "optional animated-preview output path")
	flag.Float64Var(&f.mmSize, "mm", 0, "physical size, in mm, of the longest pixel axis")
	flag.Float64Var(&f.bitDiameter, "bit", 0, "bit diameter in mm")
	flag.Float64Var(&f.targetDepth, "depth", 0, "target carve depth in mm")
	flag.IntVar(&f.minPathLength, "min-path-length", 2, "minimum vertex count for a traced path (line mode)")
	flag.Float64Var(&f.tolerance, "tolerance", 0, "Douglas-Peucker simplification tolerance in pixels (line mode)")
	flag.IntVar(&f.threshold, "threshold", 128, "foreground/background grayscale threshold (line mode)")
	flag.BoolVar(&f.invert, "invert", false, "treat the brighter side of the threshold as foreground (line mode, for light-on-dark sources)")
	flag.StringVar(&f.axis, "axis", "rows", "carve axis for heightmap mode: rows or columns")
	flag.StringVar(&f.depthStep, "depth-step", "bit-radius", "multi-pass depth strategy: bit-radius or fixed")
	flag.Float64Var(&f.fixedStepMM, "depth-step-mm", defaults.DefaultDepthStepMM, "fixed per-pass depth increment when -depth-step=fixed")
	flag.BoolVar(&f.singlePass, "single-pass", false, "carve directly to target depth in one pass")
	flag.BoolVar(&f.bothDirs, "both-directions", false, "heightmap mode: also sweep the cross axis")
	flag.BoolVar(&f.verbose, "v", false, "enable debug logging")
	flag.Parse()

	if f.verbose {
		nclog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "ncgen: %s\n", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	if f.in == "" || f.out == "" {
		return fmt.Errorf("-in and -out are required")
	}

	img, err := imgio.Decode(f.in)
	if err != nil {
		return err
	}
	b := img.Bounds()
	longest := b.Dx()
	if b.Dy() > longest {
		longest = b.Dy()
	}
	if longest == 0 {
		return fmt.Errorf("input image has zero extent")
	}
	mmPerPixel := f.mmSize / float64(longest)

	cfg := config.Default()
	gen, err := toolpath.NewGenerator(cfg, mmPerPixel, f.bitDiameter)
	if err != nil {
		return err
	}

	var strategy toolpath.DepthSequence
	if f.depthStep == "fixed" {
		strategy = toolpath.StepByFixedDepth(f.fixedStepMM)
	} else {
		strategy = toolpath.StepByBitRadius
	}

	switch f.mode {
	case "line":
		if err := runLineMode(gen, img, f, strategy, cfg); err != nil {
			return err
		}
	case "heightmap":
		if err := runHeightmapMode(gen, img, f, strategy); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown mode %q (want line or heightmap)", f.mode)
	}

	return gen.Export(f.out)
}

func runLineMode(gen *toolpath.Generator, img image.Image, f flags, strategy toolpath.DepthSequence, cfg config.Config) error {
	bin, err := imgio.ToBinary(img, f.threshold, f.invert)
	if err != nil {
		return err
	}
	skel := skeleton.Thin(bin)
	paths, err := pathbuild.BuildPaths(skel, nil, f.minPathLength)
	if err != nil {
		return err
	}

	for i := 0; i < paths.Len(); i++ {
		p := paths.At(i)
		simplify.Compress(p, f.tolerance)
		if err := gen.CarvePath(p, f.targetDepth, strategy, f.singlePass); err != nil {
			return err
		}
	}

	if f.gifOut != "" && paths.Len() > 0 {
		bg := image.NewRGBA(img.Bounds())
		frames := viz.ApplyPath(bg, paths.At(0), color.RGBA{B: 255, A: 255}, color.RGBA{R: 255, A: 255}, cfg)
		if err := viz.Export(f.gifOut, frames, cfg); err != nil {
			return err
		}
	}
	return nil
}

func runHeightmapMode(gen *toolpath.Generator, img image.Image, f flags, strategy toolpath.DepthSequence) error {
	axis := toolpath.AxisRows
	if f.axis == "columns" {
		axis = toolpath.AxisColumns
	}
	gray, err := imgio.ToGray(img)
	if err != nil {
		return err
	}
	hm := heightmap.FromGrayscale(gray)
	return gen.CarveHeightmap(hm, axis, 0, f.targetDepth, strategy, f.singlePass, f.bothDirs)
}
