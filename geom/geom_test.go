package geom_test

import (
	"testing"

	"github.com/jfechete/ncgen/geom"
)

func TestPointNeighbourAndAdjacent(t *testing.T) {
	tests := []struct {
		name         string
		a, b         geom.Point
		wantNeighbor bool
		wantAdjacent bool
	}{
		{"same point", geom.NewPoint(1, 1), geom.NewPoint(1, 1), false, false},
		{"edge neighbour", geom.NewPoint(1, 1), geom.NewPoint(2, 1), true, true},
		{"diagonal neighbour", geom.NewPoint(1, 1), geom.NewPoint(2, 2), true, false},
		{"two away", geom.NewPoint(1, 1), geom.NewPoint(3, 1), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Neighbour(tt.b); got != tt.wantNeighbor {
				t.Errorf("Neighbour = %v, want %v", got, tt.wantNeighbor)
			}
			if got := tt.a.Adjacent(tt.b); got != tt.wantAdjacent {
				t.Errorf("Adjacent = %v, want %v", got, tt.wantAdjacent)
			}
		})
	}
}

func TestPointSetDropsDuplicatesPreservesOrder(t *testing.T) {
	ps := geom.NewPointSet([]geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(1, 0), geom.NewPoint(0, 0),
	})
	if ps.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ps.Len())
	}
	if ps.At(0) != geom.NewPoint(0, 0) || ps.At(1) != geom.NewPoint(1, 0) {
		t.Errorf("order not preserved: %v, %v", ps.At(0), ps.At(1))
	}
	if !ps.Contains(geom.NewPoint(1, 0)) {
		t.Error("Contains should find (1,0)")
	}
}

func TestPathHasConnectionWraps(t *testing.T) {
	p := geom.NewPath([]geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(1, 0), geom.NewPoint(2, 0),
	})
	if !p.HasConnection(geom.NewPoint(2, 0), geom.NewPoint(0, 0), 1) {
		t.Error("expected wraparound connection within stride 1")
	}
	if !p.HasConnection(geom.NewPoint(0, 0), geom.NewPoint(2, 0), 1) {
		t.Error("HasConnection should be symmetric in its two point arguments")
	}
	if p.HasConnection(geom.NewPoint(0, 0), geom.NewPoint(2, 0), 0) {
		t.Error("stride 0 should find no connection beyond each point itself")
	}
}

func TestPathCollectionHasConnectionAcrossPaths(t *testing.T) {
	var pc geom.PathCollection
	pc.Add(geom.NewPath([]geom.Point{geom.NewPoint(0, 0), geom.NewPoint(1, 0)}))
	pc.Add(geom.NewPath([]geom.Point{geom.NewPoint(5, 5), geom.NewPoint(6, 5)}))
	if !pc.HasConnection(geom.NewPoint(5, 5), geom.NewPoint(6, 5), 1) {
		t.Error("expected connection found in second path")
	}
	if pc.HasConnection(geom.NewPoint(0, 0), geom.NewPoint(6, 5), 1) {
		t.Error("unrelated points across paths should not connect")
	}
}
