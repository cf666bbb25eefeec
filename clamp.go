package trianglify

import "golang.org/x/exp/constraints"

// Min returns the lowest of its arguments. Grid sizes, weights and stroke widths go through it.
func Min[T constraints.Ordered](first T, rest ...T) T {
	low := first
	for _, v := range rest {
		if v < low {
			low = v
		}
	}
	return low
}

// Max returns the highest of its arguments. Grid sizes, weights and stroke widths go through it.
func Max[T constraints.Ordered](first T, rest ...T) T {
	high := first
	for _, v := range rest {
		if v > high {
			high = v
		}
	}
	return high
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(lo, Min(hi, v))
}
