package imgio

import (
	"image"
	"image/color"

	"github.com/jfechete/ncgen/ncerr"
)

// Gray adapts a decoded image.Image into the 8-bit intensity reader
// skeleton.GrayImage and heightmap.GrayImage both expect, normalizing the
// source's bounds so (0,0) is always the top-left sample.
type Gray struct {
	img image.Image
	b   image.Rectangle
}

// ToGray wraps img for grayscale sampling. Returns InvalidArgument if img
// is zero-sized.
func ToGray(img image.Image) (Gray, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return Gray{}, ncerr.WithContext(ncerr.ErrInvalidArgument, "image has zero extent %v", b)
	}
	return Gray{img: img, b: b}, nil
}

// Width returns the image's pixel width.
func (g Gray) Width() int { return g.b.Dx() }

// Height returns the image's pixel height.
func (g Gray) Height() int { return g.b.Dy() }

// At returns the 8-bit luminance at (x, y), 0 (black) to 255 (white).
func (g Gray) At(x, y int) int {
	c := color.GrayModel.Convert(g.img.At(g.b.Min.X+x, g.b.Min.Y+y)).(color.Gray)
	return int(c.Y)
}
