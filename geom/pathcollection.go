package geom

// PathCollection is an ordered list of Paths. Its only behaviour beyond
// plain storage is the connection query used by pathbuild to avoid
// re-tracing an edge that an already-built path covers.
type PathCollection struct {
	paths []Path
}

// NewPathCollection wraps paths in a PathCollection.
func NewPathCollection(paths []Path) PathCollection {
	return PathCollection{paths: paths}
}

// Add appends a path to the collection.
func (pc *PathCollection) Add(p Path) {
	pc.paths = append(pc.paths, p)
}

// Len returns the number of paths.
func (pc *PathCollection) Len() int {
	return len(pc.paths)
}

// At returns the i'th path.
func (pc *PathCollection) At(i int) *Path {
	return &pc.paths[i]
}

// All returns the underlying path slice.
func (pc *PathCollection) All() []Path {
	return pc.paths
}

// HasConnection reports whether any stored path contains a and b within
// maxStride positions of each other (see Path.HasConnection).
func (pc *PathCollection) HasConnection(a, b Point, maxStride int) bool {
	for i := range pc.paths {
		if pc.paths[i].HasConnection(a, b, maxStride) {
			return true
		}
	}
	return false
}
