package pathbuild

import (
	"github.com/jfechete/ncgen/geom"
	"github.com/jfechete/ncgen/ncerr"
	"github.com/jfechete/ncgen/nclog"
)

// BuildPaths walks points into a PathCollection. already, if non-nil, is an
// already-traced PathCollection whose edges must not be retraced; paths
// built earlier in this same call are also checked, reproducing the
// original algorithm's self-referential behaviour where each new path is
// built aware of every path already added in this call.
//
// minPathLength must be at least 2; shorter paths are discarded only after
// every walk has completed, so a short path still blocks re-discovery of
// the same two points while the rest of the set is being walked.
//
// An empty points set is not an error: BuildPaths returns an empty
// PathCollection.
func BuildPaths(points geom.PointSet, already *geom.PathCollection, minPathLength int) (geom.PathCollection, error) {
	if minPathLength < 2 {
		return geom.PathCollection{}, ncerr.WithContext(ncerr.ErrInvalidArgument,
			"min_path_length must be at least 2, got %d", minPathLength)
	}
	if points.Len() == 0 {
		return geom.PathCollection{}, nil
	}

	result := geom.PathCollection{}
	check := func(a, b geom.Point, maxStride int) bool {
		if already != nil && already.HasConnection(a, b, maxStride) {
			return true
		}
		return result.HasConnection(a, b, maxStride)
	}

	unexpandableSet := make(map[geom.Point]bool)
	addUnexpandable := func(pts []geom.Point) {
		for _, p := range pts {
			unexpandableSet[p] = true
		}
	}

	walk := func(start geom.Point) []geom.Point {
		path, expandable, unexpandable := extendPath(points, start, check)
		if len(path) > 1 {
			result.Add(geom.NewPath(path))
		}
		addUnexpandable(unexpandable)
		var pending []geom.Point
		for _, p := range expandable {
			if !unexpandableSet[p] {
				pending = append(pending, p)
			}
		}
		return pending
	}

	for _, p := range points.All() {
		if unexpandableSet[p] {
			continue
		}
		pending := walk(p)
		for len(pending) > 0 {
			cur := pending[0]
			pending = pending[1:]
			if unexpandableSet[cur] {
				continue
			}
			more := walk(cur)
			for _, m := range more {
				if !unexpandableSet[m] && !containsPoint(pending, m) {
					pending = append(pending, m)
				}
			}
			var filtered []geom.Point
			for _, m := range pending {
				if !unexpandableSet[m] {
					filtered = append(filtered, m)
				}
			}
			pending = filtered
		}
	}

	var kept []geom.Path
	for _, p := range result.All() {
		path := p
		if path.Len() >= minPathLength {
			kept = append(kept, path)
		}
	}
	nclog.Logger().Debug("pathbuild.BuildPaths done",
		"input_points", points.Len(), "raw_paths", result.Len(), "kept_paths", len(kept))
	return geom.NewPathCollection(kept), nil
}
