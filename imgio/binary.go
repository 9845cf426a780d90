package imgio

import (
	"image"
)

// Binary adapts a decoded image.Image into the 1-bit foreground/background
// reader skeleton.BinaryImage expects, by thresholding grayscale intensity.
type Binary struct {
	gray      Gray
	threshold int
	invert    bool
}

// ToBinary wraps img for foreground/background sampling: a pixel is
// foreground when its grayscale intensity is below threshold (0-255),
// matching the convention that a dark stroke on a light page is the line to
// be thinned and 255 is background. Set invert to sample the brighter side
// as foreground instead, for sources encoded with the opposite polarity
// (e.g. a light line on a dark background). Returns InvalidArgument if img
// is zero-sized.
func ToBinary(img image.Image, threshold int, invert bool) (Binary, error) {
	g, err := ToGray(img)
	if err != nil {
		return Binary{}, err
	}
	return Binary{gray: g, threshold: threshold, invert: invert}, nil
}

// Width returns the image's pixel width.
func (b Binary) Width() int { return b.gray.Width() }

// Height returns the image's pixel height.
func (b Binary) Height() int { return b.gray.Height() }

// At reports whether the pixel at (x, y) is foreground.
func (b Binary) At(x, y int) bool {
	fg := b.gray.At(x, y) < b.threshold
	if b.invert {
		fg = !fg
	}
	return fg
}
