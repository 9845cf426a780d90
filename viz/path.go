package viz

import (
	"image"
	"image/color"
	"math"

	"github.com/jfechete/ncgen/config"
	"github.com/jfechete/ncgen/geom"
	"github.com/jfechete/ncgen/internal/numeric"
)

// ApplyPath stamps every vertex of path onto a copy of background in order,
// and returns the incremental frames to animate: a new frame is captured
// roughly every ceil(n/cfg.MaxGIFLineFrames) vertices so a long path still
// produces a bounded-size preview. The first vertex is stamped with
// startColor, every later one with lineColor.
func ApplyPath(background image.Image, path *geom.Path, lineColor, startColor color.Color, cfg config.Config) []*image.RGBA {
	dst := copyToRGBA(background)
	n := path.Len()
	if n == 0 {
		return nil
	}
	step := int(math.Ceil(float64(n) / float64(numeric.Max(cfg.MaxGIFLineFrames, 1))))
	if step < 1 {
		step = 1
	}

	var frames []*image.RGBA
	for i := 0; i < n; i++ {
		col := lineColor
		if i == 0 {
			col = startColor
		}
		StampPoint(dst, path.At(i), cfg.DotPixelSize, col)
		if i%step == 0 {
			frames = append(frames, snapshot(dst))
		}
	}
	return frames
}

func snapshot(src *image.RGBA) *image.RGBA {
	dup := image.NewRGBA(src.Bounds())
	copy(dup.Pix, src.Pix)
	dup.Stride = src.Stride
	return dup
}

