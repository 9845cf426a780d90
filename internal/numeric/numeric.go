// Package numeric holds small generic helpers shared by heightmap, toolpath
// and viz — true-max aggregation and depth-range scaling, neither
// of which the standard library's min/max builtins cover across both
// integer coordinate types and float64 depths without duplicating the
// comparison for each call site.
package numeric

import "golang.org/x/exp/constraints"

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}

// ScaleUnit linearly rescales v from [0, 1] to [lo, hi].
func ScaleUnit(v, lo, hi float64) float64 {
	return lo + v*(hi-lo)
}
