package heightmap_test

import (
	"testing"

	"github.com/jfechete/ncgen/heightmap"
)

type gray struct {
	w, h int
	v    [][]int // v[y][x]
}

func (g gray) Width() int  { return g.w }
func (g gray) Height() int { return g.h }
func (g gray) At(x, y int) int {
	return g.v[y][x]
}

func TestFromGrayscaleNormalizes(t *testing.T) {
	img := gray{w: 2, h: 1, v: [][]int{{0, 255}}}
	hm := heightmap.FromGrayscale(img)
	if hm.At(0, 0) != 0 {
		t.Errorf("At(0,0) = %v, want 0", hm.At(0, 0))
	}
	if hm.At(1, 0) != 1 {
		t.Errorf("At(1,0) = %v, want 1", hm.At(1, 0))
	}
}

func TestMaxOverRowsTrueMax(t *testing.T) {
	img := gray{w: 1, h: 2, v: [][]int{{10}, {250}}}
	hm := heightmap.FromGrayscale(img)
	got := hm.MaxOverRows([]int{0, 1})
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Coord != 0 {
		t.Errorf("coord = %d, want 0", got[0].Coord)
	}
	want := 250.0 / 255
	if got[0].Height != want {
		t.Errorf("height = %v, want %v (true max, not first-seen)", got[0].Height, want)
	}
}

func TestMaxOverRowsSortedAscendingByX(t *testing.T) {
	img := gray{w: 3, h: 1, v: [][]int{{30, 10, 20}}}
	hm := heightmap.FromGrayscale(img)
	got := hm.MaxOverRows([]int{0})
	for i := 1; i < len(got); i++ {
		if got[i].Coord < got[i-1].Coord {
			t.Fatalf("not sorted ascending: %v", got)
		}
	}
}

func TestRowColumnOrdering(t *testing.T) {
	img := gray{w: 2, h: 2, v: [][]int{{1, 2}, {3, 4}}}
	hm := heightmap.FromGrayscale(img)
	row := hm.Row(1)
	if row[0].Coord != 0 || row[1].Coord != 1 {
		t.Fatalf("row not ascending: %v", row)
	}
	col := hm.Column(1)
	if col[0].Coord != 0 || col[1].Coord != 1 {
		t.Fatalf("column not ascending: %v", col)
	}
}
