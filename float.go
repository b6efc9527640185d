package lpc

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the sample type of every computation in this package.
type Float interface {
	constraints.Float
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func finite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// resize returns buf with length n, reusing its backing array when possible.
// The returned slice is zeroed.
func resize[T Float](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}
