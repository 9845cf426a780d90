// Package viz is the optional animated-GIF preview compositor: it stamps
// traced points and paths onto a copy of the source image and assembles
// the incremental frames into a .gif, mirroring the original
// Point.apply_to_img / Path.apply_to_img behavior.
package viz

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/jfechete/ncgen/geom"
)

// StampPoint draws p onto dst as a filled disc of diameterPx pixels (or a
// single pixel when diameterPx <= 1).
func StampPoint(dst *image.RGBA, p geom.Point, diameterPx int, col color.Color) {
	if diameterPx <= 1 {
		dst.Set(p.X, p.Y, col)
		return
	}
	stampDisc(dst, p.X, p.Y, diameterPx, col)
}

// stampDisc fills a circle of the given diameter centered at (cx, cy) by
// drawing one horizontal strip per scanline with golang.org/x/image/draw,
// since x/image/draw.Draw has no masked variant to fill an ellipse directly.
func stampDisc(dst *image.RGBA, cx, cy, diameterPx int, col color.Color) {
	radius := diameterPx / 2
	if radius < 1 {
		radius = 1
	}
	src := image.NewUniform(col)
	for dy := -radius; dy <= radius; dy++ {
		dx := int(math.Sqrt(float64(radius*radius - dy*dy)))
		row := image.Rect(cx-dx, cy+dy, cx+dx+1, cy+dy+1)
		xdraw.Draw(dst, row, src, image.Point{}, xdraw.Over)
	}
}

// copyToRGBA returns a mutable *image.RGBA copy of src, so repeated
// stamping never mutates the caller's original background.
func copyToRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	xdraw.Draw(dst, b, src, b.Min, xdraw.Src)
	return dst
}
