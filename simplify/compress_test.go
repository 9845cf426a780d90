package simplify_test

import (
	"testing"

	"github.com/jfechete/ncgen/geom"
	"github.com/jfechete/ncgen/simplify"
)

func mkpath(coords ...[2]int) geom.Path {
	points := make([]geom.Point, len(coords))
	for i, c := range coords {
		points[i] = geom.NewPoint(c[0], c[1])
	}
	return geom.NewPath(points)
}

func assertPoints(t *testing.T, got []geom.Point, want [][2]int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (got=%v)", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].X != w[0] || got[i].Y != w[1] {
			t.Errorf("point[%d] = %v, want (%d,%d)", i, got[i], w[0], w[1])
		}
	}
}

// S4 — collinear run collapses, the non-collinear corner survives.
func TestCompressS4(t *testing.T) {
	p := mkpath([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{3, 1}, [2]int{3, 2})
	simplify.Compress(&p, 0)
	assertPoints(t, p.Points(), [][2]int{{0, 0}, {3, 0}, {3, 2}})
}

func TestCompressNeverIncreasesLength(t *testing.T) {
	p := mkpath([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 0}, [2]int{3, 1}, [2]int{4, 0})
	before := p.Len()
	simplify.Compress(&p, 0.1)
	if p.Len() > before {
		t.Fatalf("compression increased length: %d -> %d", before, p.Len())
	}
}

func TestCompressBoundRespected(t *testing.T) {
	p := mkpath([2]int{0, 0}, [2]int{5, 1}, [2]int{10, 0})
	simplify.Compress(&p, 1.5)
	// Either the midpoint survives (deviation too large) or it's gone
	// (within tolerance) — in either case the endpoints must remain.
	pts := p.Points()
	if pts[0] != geom.NewPoint(0, 0) || pts[len(pts)-1] != geom.NewPoint(10, 0) {
		t.Fatalf("endpoints not preserved: %v", pts)
	}
}

func TestCompressSinglePointUnchanged(t *testing.T) {
	p := mkpath([2]int{5, 5})
	simplify.Compress(&p, 0)
	assertPoints(t, p.Points(), [][2]int{{5, 5}})
}
