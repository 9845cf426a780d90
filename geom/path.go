package geom

// Path is an ordered, non-empty sequence of Points where every consecutive
// pair is an 8-neighbour of the other. A closed path has its last point
// equal to its first; this only happens when a walker explicitly closes the
// loop, never as a side effect of simplification.
type Path struct {
	points []Point
}

// NewPath builds a Path from points. Callers are responsible for the
// 8-neighbour invariant; NewPath itself performs no validation so that
// partially-built paths can be constructed incrementally by pathbuild.
func NewPath(points []Point) Path {
	return Path{points: points}
}

// Len returns the number of vertices.
func (p *Path) Len() int {
	return len(p.points)
}

// At returns the i'th vertex.
func (p *Path) At(i int) Point {
	return p.points[i]
}

// First returns the first vertex.
func (p *Path) First() Point {
	return p.points[0]
}

// Last returns the last vertex.
func (p *Path) Last() Point {
	return p.points[len(p.points)-1]
}

// Points returns the backing vertex slice. The slice is shared with p;
// simplify.Compress mutates it in place via SetPoints, and nothing else in
// the pipeline is expected to write through it.
func (p *Path) Points() []Point {
	return p.points
}

// SetPoints replaces the vertex slice, used by simplify.Compress after it
// has removed interior vertices.
func (p *Path) SetPoints(points []Point) {
	p.points = points
}

// Closed reports whether the path's last vertex equals its first (and the
// path has more than one vertex) — i.e. whether a walker closed the loop.
func (p *Path) Closed() bool {
	return len(p.points) > 1 && p.points[0] == p.points[len(p.points)-1]
}

// Contains reports whether q appears anywhere in the path.
func (p *Path) Contains(q Point) bool {
	for _, v := range p.points {
		if v == q {
			return true
		}
	}
	return false
}

// HasConnection reports whether a and b appear within maxStride positions of
// each other along the path's natural index, wrapping modulo the path
// length. For a closed path the repeated closing vertex is not counted, so
// the wrap runs from the last distinct vertex straight to the first. This is
// used by the path builder to avoid re-tracing an edge (or its matching
// diagonal) that an already-built path already covers.
func (p *Path) HasConnection(a, b Point, maxStride int) bool {
	n := len(p.points)
	if p.Closed() {
		n--
	}
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		cur := p.points[i]
		if cur != a && cur != b {
			continue
		}
		other := a
		if cur == a {
			other = b
		}
		for j := 1; j <= maxStride; j++ {
			if p.points[(i+j)%n] == other {
				return true
			}
		}
	}
	return false
}
