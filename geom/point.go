// Package geom holds the immutable geometric data model shared across the
// NCGen pipeline: Point, PointSet, Path, and PathCollection. These types are
// built once per raster and, aside from Path compression, never mutated.
package geom

// Point is an immutable pixel coordinate. Coordinates are currently meant to
// represent integer pixel positions; equality is by value.
type Point struct {
	X, Y int
}

// NewPoint returns the point (x, y).
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// XY returns the coordinate pair as a tuple projection.
func (p Point) XY() (int, int) {
	return p.X, p.Y
}

// Neighbour reports whether q lies in p's 8-neighbourhood: Chebyshev
// distance 1 and q != p.
func (p Point) Neighbour(q Point) bool {
	dx := p.X - q.X
	dy := p.Y - q.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1 && p != q
}

// Adjacent reports whether q is a 4-neighbour of p: Chebyshev distance 1
// AND Manhattan distance 1, i.e. p and q share an edge rather than only a
// corner.
func (p Point) Adjacent(q Point) bool {
	dx := p.X - q.X
	dy := p.Y - q.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return (dx == 1 && dy == 0) || (dx == 0 && dy == 1)
}
