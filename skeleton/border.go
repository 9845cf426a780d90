package skeleton

import "github.com/jfechete/ncgen/geom"

// BorderTrace returns the inner one-pixel-thick boundary of the foreground
// regions of img: a foreground pixel is included iff at least one of its
// 4-neighbours is background (out-of-bounds counts as background).
// Iteration is column-major (x outer, y inner); the returned PointSet
// preserves discovery order.
func BorderTrace(img BinaryImage) geom.PointSet {
	w, h := img.Width(), img.Height()
	var points []geom.Point
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if !img.At(x, y) {
				continue
			}
			for _, off := range neighbor4 {
				nx, ny := x+off[0], y+off[1]
				if !inBounds(w, h, nx, ny) || !img.At(nx, ny) {
					points = append(points, geom.NewPoint(x, y))
					break
				}
			}
		}
	}
	return geom.NewPointSet(points)
}

// ColorEdgeTrace returns the set of pixels that lie on the brighter side of
// a grayscale transition: a pixel p with intensity c is included iff at
// least one in-bounds 4-neighbour has intensity strictly less than c. Two
// regions of identical grayscale value produce no edge. Iteration is
// column-major, matching BorderTrace.
func ColorEdgeTrace(img GrayImage) geom.PointSet {
	w, h := img.Width(), img.Height()
	var points []geom.Point
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			c := img.At(x, y)
			for _, off := range neighbor4 {
				nx, ny := x+off[0], y+off[1]
				if !inBounds(w, h, nx, ny) {
					continue
				}
				if img.At(nx, ny) < c {
					points = append(points, geom.NewPoint(x, y))
					break
				}
			}
		}
	}
	return geom.NewPointSet(points)
}
