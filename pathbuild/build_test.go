package pathbuild_test

import (
	"testing"

	"github.com/jfechete/ncgen/geom"
	"github.com/jfechete/ncgen/pathbuild"
)

func pts(coords ...[2]int) geom.PointSet {
	points := make([]geom.Point, len(coords))
	for i, c := range coords {
		points[i] = geom.NewPoint(c[0], c[1])
	}
	return geom.NewPointSet(points)
}

// S3 — adjacency is preferred throughout, producing a single path through
// all five points in input order.
func TestBuildPathsPrefersAdjacency(t *testing.T) {
	points := pts([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{3, 1})
	paths, err := pathbuild.BuildPaths(points, nil, 2)
	if err != nil {
		t.Fatalf("BuildPaths error: %v", err)
	}
	if paths.Len() != 1 {
		t.Fatalf("expected 1 path, got %d", paths.Len())
	}
	want := []geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(1, 0), geom.NewPoint(2, 0),
		geom.NewPoint(2, 1), geom.NewPoint(3, 1),
	}
	p := paths.At(0)
	if p.Len() != len(want) {
		t.Fatalf("path length = %d, want %d (points=%v)", p.Len(), len(want), p.Points())
	}
	for i, w := range want {
		if p.At(i) != w {
			t.Errorf("path[%d] = %v, want %v", i, p.At(i), w)
		}
	}
}

func TestBuildPathsRejectsShortMinLength(t *testing.T) {
	if _, err := pathbuild.BuildPaths(pts([2]int{0, 0}), nil, 1); err == nil {
		t.Fatal("expected error for min_path_length < 2")
	}
}

func TestBuildPathsEmptyInputIsNotError(t *testing.T) {
	paths, err := pathbuild.BuildPaths(geom.NewPointSet(nil), nil, 2)
	if err != nil {
		t.Fatalf("expected no error for empty input, got %v", err)
	}
	if paths.Len() != 0 {
		t.Fatalf("expected empty PathCollection, got %d paths", paths.Len())
	}
}

func TestBuildPathsDiscardsShortPaths(t *testing.T) {
	// One connected pair plus one isolated point far away: the isolated
	// point never forms a path of length >= 2 and must not appear.
	points := pts([2]int{0, 0}, [2]int{1, 0}, [2]int{50, 50})
	paths, err := pathbuild.BuildPaths(points, nil, 2)
	if err != nil {
		t.Fatalf("BuildPaths error: %v", err)
	}
	if paths.Len() != 1 {
		t.Fatalf("expected 1 path (isolated point dropped), got %d", paths.Len())
	}
}

func TestPathClosesLoop(t *testing.T) {
	// A closed ring of 8-neighbours: the walker should close back to the
	// start when the tail is a neighbour of the start point.
	points := pts(
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0},
		[2]int{2, 1}, [2]int{2, 2}, [2]int{1, 2},
		[2]int{0, 2}, [2]int{0, 1},
	)
	paths, err := pathbuild.BuildPaths(points, nil, 2)
	if err != nil {
		t.Fatalf("BuildPaths error: %v", err)
	}
	if paths.Len() != 1 {
		t.Fatalf("expected 1 path, got %d", paths.Len())
	}
	p := paths.At(0)
	if !p.Closed() {
		t.Fatalf("expected closed loop, got %v", p.Points())
	}
}
