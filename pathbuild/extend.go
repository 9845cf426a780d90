// Package pathbuild walks an unordered PointSet into ordered Paths,
// preferring edge-sharing neighbours over diagonal ones and avoiding
// re-tracing a corner already covered by a previously built path.
package pathbuild

import "github.com/jfechete/ncgen/geom"

// connChecker reports whether a and b are already connected within
// maxStride positions in some already-traced path.
type connChecker func(a, b geom.Point, maxStride int) bool

func containsPoint(path []geom.Point, q geom.Point) bool {
	for _, p := range path {
		if p == q {
			return true
		}
	}
	return false
}

// connectionStride is the stride used when checking whether a candidate
// edge has already been traced. Using 2 rather than 1 prevents re-use of
// both the diagonal and the orthogonal "L" sharing the same corner pair.
const connectionStride = 2

// extendPath grows a path from start, one 8-neighbour at a time, preferring
// edge-sharing (adjacent) candidates over diagonal ones (corner priority).
// It reports which of the path's interior vertices still had unexplored
// candidates when consumed (expandable) versus which didn't
// (unexpandable) — a heuristic used only to prune the outer walk in
// BuildPaths, not a correctness invariant.
func extendPath(points geom.PointSet, start geom.Point, check connChecker) (path, expandable, unexpandable []geom.Point) {
	path = []geom.Point{start}

	for {
		t := path[len(path)-1]
		var adjacents, diagonals []geom.Point
		for _, cand := range points.All() {
			if !t.Neighbour(cand) {
				continue
			}
			if containsPoint(path, cand) {
				continue
			}
			if check != nil && check(t, cand, connectionStride) {
				continue
			}
			if t.Adjacent(cand) {
				adjacents = append(adjacents, cand)
			} else {
				diagonals = append(diagonals, cand)
			}
		}

		var next geom.Point
		found := false
		switch {
		case len(adjacents) > 0:
			next = adjacents[len(adjacents)-1]
			adjacents = adjacents[:len(adjacents)-1]
			found = true
		case len(diagonals) > 0:
			next = diagonals[len(diagonals)-1]
			diagonals = diagonals[:len(diagonals)-1]
			found = true
		}

		if found {
			path = append(path, next)
			if len(adjacents)+len(diagonals) > 0 {
				expandable = append(expandable, path[len(path)-2])
			} else {
				unexpandable = append(unexpandable, path[len(path)-2])
			}
			continue
		}

		unexpandable = append(unexpandable, path[len(path)-1])
		if path[len(path)-1].Neighbour(start) {
			path = append(path, start)
		}
		return
	}
}
