package geom

// PointSet is an unordered collection of distinct Points that preserves the
// order in which points were added. It is built once (by the skeleton
// package) and is read-only to every downstream component.
type PointSet struct {
	points []Point
	index  map[Point]int
}

// NewPointSet builds a PointSet from points, preserving first-seen order and
// dropping duplicates.
func NewPointSet(points []Point) PointSet {
	ps := PointSet{
		points: make([]Point, 0, len(points)),
		index:  make(map[Point]int, len(points)),
	}
	for _, p := range points {
		ps.Add(p)
	}
	return ps
}

// Add appends p if it is not already present.
func (ps *PointSet) Add(p Point) {
	if ps.index == nil {
		ps.index = make(map[Point]int)
	}
	if _, ok := ps.index[p]; ok {
		return
	}
	ps.index[p] = len(ps.points)
	ps.points = append(ps.points, p)
}

// Contains reports whether p is a member of the set.
func (ps PointSet) Contains(p Point) bool {
	_, ok := ps.index[p]
	return ok
}

// Len returns the number of distinct points in the set.
func (ps PointSet) Len() int {
	return len(ps.points)
}

// At returns the i'th point in insertion order.
func (ps PointSet) At(i int) Point {
	return ps.points[i]
}

// All returns the points in insertion order. The returned slice shares
// storage with ps; callers must not mutate it.
func (ps PointSet) All() []Point {
	return ps.points
}
