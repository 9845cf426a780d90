package skeleton

import "github.com/jfechete/ncgen/geom"

// grid is a mutable working copy of a BinaryImage: thinning repeatedly
// clears pixels, which a read-only BinaryImage cannot do.
type grid struct {
	w, h int
	fg   []bool
}

func newGrid(img BinaryImage) *grid {
	w, h := img.Width(), img.Height()
	g := &grid{w: w, h: h, fg: make([]bool, w*h)}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			g.fg[y*w+x] = img.At(x, y)
		}
	}
	return g
}

func (g *grid) at(x, y int) bool {
	if !inBounds(g.w, g.h, x, y) {
		return false
	}
	return g.fg[y*g.w+x]
}

func (g *grid) clear(x, y int) {
	g.fg[y*g.w+x] = false
}

func (g *grid) index(x, y int) int {
	return y*g.w + x
}

// removable reports whether the foreground pixel at (x, y) may be deleted
// without locally breaking connectivity: at least two 8-neighbours are
// foreground (line-end guard), at least two are background (interior
// guard), and the cyclic N,NE,E,SE,S,SW,W,NW sequence has at most one
// foreground-to-background transition (connectivity guard).
func (g *grid) removable(x, y int) bool {
	var states [8]bool
	fgCount := 0
	for i, off := range neighbor8Cyclic {
		states[i] = g.at(x+off[0], y+off[1])
		if states[i] {
			fgCount++
		}
	}
	bgCount := 8 - fgCount
	if fgCount < 2 || bgCount < 2 {
		return false
	}
	transitions := 0
	for i := 0; i < 8; i++ {
		next := (i + 1) % 8
		if states[i] && !states[next] {
			transitions++
		}
	}
	return transitions <= 1
}

// Thin reduces img to a one-pixel-wide morphological skeleton using a
// FIFO work queue seeded with every initially-removable pixel. Pixels are
// re-checked on dequeue because the image mutates as pixels ahead in the
// queue are removed — this is explicitly not a parallel sweep. Every
// 8-neighbour of a freshly-removed pixel that becomes removable is
// enqueued, with a parallel boolean set preventing duplicate queue entries.
func Thin(img BinaryImage) geom.PointSet {
	g := newGrid(img)

	inQueue := make([]bool, g.w*g.h)
	var queue []int // holds flat index y*w+x; drained with a head cursor
	head := 0

	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			if g.at(x, y) && g.removable(x, y) {
				idx := g.index(x, y)
				inQueue[idx] = true
				queue = append(queue, idx)
			}
		}
	}

	for head < len(queue) {
		idx := queue[head]
		head++
		inQueue[idx] = false

		x, y := idx%g.w, idx/g.w
		if !g.at(x, y) || !g.removable(x, y) {
			continue
		}
		g.clear(x, y)

		for _, off := range neighbor8Cyclic {
			nx, ny := x+off[0], y+off[1]
			if !inBounds(g.w, g.h, nx, ny) || !g.at(nx, ny) {
				continue
			}
			nIdx := g.index(nx, ny)
			if inQueue[nIdx] {
				continue
			}
			if g.removable(nx, ny) {
				inQueue[nIdx] = true
				queue = append(queue, nIdx)
			}
		}
	}

	var points []geom.Point
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			if g.at(x, y) {
				points = append(points, geom.NewPoint(x, y))
			}
		}
	}
	return geom.NewPointSet(points)
}
