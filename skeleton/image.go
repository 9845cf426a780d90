// Package skeleton extracts foreground points from a raster image: the
// inner border of a binary shape, the brighter-side edge of a grayscale
// transition, or a one-pixel-wide morphological skeleton.
package skeleton

// BinaryImage is the minimal reader a border trace or thinning pass needs:
// pixel dimensions and a foreground/background test. Decoding a concrete
// image format into this shape is the imgio package's job, not this one's.
type BinaryImage interface {
	Width() int
	Height() int
	// At reports whether the pixel at (x, y) is foreground.
	At(x, y int) bool
}

// GrayImage is the minimal reader a color-edge trace needs: pixel
// dimensions and an 8-bit intensity sample.
type GrayImage interface {
	Width() int
	Height() int
	// At returns the intensity (0-255) at (x, y).
	At(x, y int) int
}

// neighbor4 lists the 4-neighbour offsets in no particular order; used by
// border and color-edge tracing.
var neighbor4 = [4][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// neighbor8Cyclic lists the 8-neighbour offsets in the cyclic order
// N, NE, E, SE, S, SW, W, NW required by the thinning connectivity guard.
var neighbor8Cyclic = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

func inBounds(w, h, x, y int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}
