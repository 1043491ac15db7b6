package geom

import "golang.org/x/exp/constraints"

// Clamp restricts v to [lo,hi]. Shared by the wall/sprite rasterizers to
// clamp screen-space column and row ranges against portal clip bounds.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

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
