// Package heightmap holds the dense 2-D grid of normalized heights (C5)
// used by the grayscale carving mode, plus the row/column and
// band-aggregation queries the bit-width partitioner and toolpath emitter
// need.
package heightmap

import (
	"sort"

	"github.com/jfechete/ncgen/internal/numeric"
)

// GrayImage is the minimal reader FromGrayscale needs.
type GrayImage interface {
	Width() int
	Height() int
	// At returns the intensity (0-255) at (x, y).
	At(x, y int) int
}

// Sample pairs an axis coordinate with the height measured there.
type Sample struct {
	Coord  int
	Height float64
}

// Heightmap is an immutable dense grid H[x, y] in [0, 1].
type Heightmap struct {
	w, h int
	data []float64
}

// FromGrayscale builds a Heightmap by normalizing every pixel intensity of
// img by 1/255.
func FromGrayscale(img GrayImage) Heightmap {
	w, h := img.Width(), img.Height()
	data := make([]float64, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			data[y*w+x] = float64(img.At(x, y)) / 255
		}
	}
	return Heightmap{w: w, h: h, data: data}
}

// Width returns the grid's x extent.
func (hm Heightmap) Width() int { return hm.w }

// Height returns the grid's y extent.
func (hm Heightmap) Height() int { return hm.h }

// At returns H[x, y].
func (hm Heightmap) At(x, y int) float64 {
	return hm.data[y*hm.w+x]
}

// Row returns (x, H[x,y]) pairs for a fixed y, in ascending x order.
func (hm Heightmap) Row(y int) []Sample {
	out := make([]Sample, hm.w)
	for x := 0; x < hm.w; x++ {
		out[x] = Sample{Coord: x, Height: hm.At(x, y)}
	}
	return out
}

// Column returns (y, H[x,y]) pairs for a fixed x, in ascending y order.
func (hm Heightmap) Column(x int) []Sample {
	out := make([]Sample, hm.h)
	for y := 0; y < hm.h; y++ {
		out[y] = Sample{Coord: y, Height: hm.At(x, y)}
	}
	return out
}

// MaxOverRows aggregates every row in ys by true maximum height at each x,
// returning samples sorted ascending by x with one entry per x.
//
// A naive implementation collapsing duplicate x coordinates by keeping
// whichever sample sorts first would pick an arbitrary height, not the
// tallest one. This implementation makes the explicit choice documented in
// DESIGN.md: true max-aggregation, since a finite-width bit carving this
// band must never be told to plunge past the tallest feature within its
// reach.
func (hm Heightmap) MaxOverRows(ys []int) []Sample {
	best := make(map[int]float64, hm.w)
	for _, y := range ys {
		if y < 0 || y >= hm.h {
			continue
		}
		for x := 0; x < hm.w; x++ {
			v := hm.At(x, y)
			if cur, ok := best[x]; ok {
				best[x] = numeric.Max(cur, v)
			} else {
				best[x] = v
			}
		}
	}
	return sortedSamples(best)
}

// MaxOverColumns is the column-axis analogue of MaxOverRows.
func (hm Heightmap) MaxOverColumns(xs []int) []Sample {
	best := make(map[int]float64, hm.h)
	for _, x := range xs {
		if x < 0 || x >= hm.w {
			continue
		}
		for y := 0; y < hm.h; y++ {
			v := hm.At(x, y)
			if cur, ok := best[y]; ok {
				best[y] = numeric.Max(cur, v)
			} else {
				best[y] = v
			}
		}
	}
	return sortedSamples(best)
}

func sortedSamples(best map[int]float64) []Sample {
	out := make([]Sample, 0, len(best))
	for coord, v := range best {
		out = append(out, Sample{Coord: coord, Height: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Coord < out[j].Coord })
	return out
}
