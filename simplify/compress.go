// Package simplify implements the windowed Douglas-Peucker-style path
// compressor (C4): it removes interior vertices whose perpendicular
// deviation from the straight segment spanning their retained neighbours
// never exceeds a caller-supplied tolerance.
package simplify

import "github.com/jfechete/ncgen/geom"

// Compress removes interior vertices from path in place such that every
// removed vertex lies within maxDist (pixels) of the straight segment
// spanning its retained neighbours. It never increases the vertex count;
// for maxDist == 0 it preserves every point that is non-collinear with its
// neighbours. This is a greedy variant of Douglas-Peucker and is O(n^2)
// worst case.
func Compress(path *geom.Path, maxDist float64) {
	maxDistSqr := maxDist * maxDist

	points := path.Points()
	i := 1
	var window []geom.Point

	for i < len(points)-1 {
		window = append(window, points[i])

		prev := points[i-1]
		next := points[i+1]
		a := float64(prev.Y - next.Y)
		b := float64(next.X - prev.X)
		c := -(a*float64(prev.X) + b*float64(prev.Y))

		safe := true
		for _, candidate := range window {
			var distSqr float64
			if a == 0 && b == 0 {
				dx := float64(prev.X - candidate.X)
				dy := float64(prev.Y - candidate.Y)
				distSqr = dx*dx + dy*dy
			} else {
				num := a*float64(candidate.X) + b*float64(candidate.Y) + c
				distSqr = (num * num) / (a*a + b*b)
			}
			if distSqr > maxDistSqr {
				safe = false
				break
			}
		}

		if safe {
			points = append(points[:i], points[i+1:]...)
			continue
		}

		i++
		window = window[:0]
	}

	path.SetPoints(points)
}
