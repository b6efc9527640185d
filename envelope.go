package lpc

import (
	"fmt"
	"math"
	"math/cmplx"
)

// FreqResponse evaluates H(z) = B(z)/A(z) at the len(dst) points
// z_k = exp(-j*2*pi*k/n), where B(z) = sum b[i]*z^i and likewise for A.
// At k = 0 this is sum(b)/sum(a), the DC gain.
func FreqResponse[T Float](b, a []T, dst []complex128) error {
	n := len(dst)
	switch {
	case n == 0:
		return fmt.Errorf("%w: no frequency points", ErrInvalidArgument)
	case len(b) == 0 || len(a) == 0:
		return fmt.Errorf("%w: empty polynomial", ErrInvalidArgument)
	}

	step := -2 * math.Pi / float64(n)
	for k := range dst {
		z := cmplx.Rect(1, step*float64(k))
		den := horner(a, z)
		if den == 0 {
			return fmt.Errorf("%w: A(z) vanishes at point %d", ErrNumericDegeneracy, k)
		}
		dst[k] = horner(b, z) / den
	}

	return nil
}

// LogMagnitude writes 20*log10(|H(z_k)|) for the points of FreqResponse.
func LogMagnitude[T Float](b, a []T, dst []T) error {
	h := make([]complex128, len(dst))
	if err := FreqResponse(b, a, h); err != nil {
		return err
	}
	for k, v := range h {
		dst[k] = T(20 * math.Log10(cmplx.Abs(v)))
	}

	return nil
}

func horner[T Float](c []T, z complex128) complex128 {
	var acc complex128
	for i := len(c) - 1; i >= 0; i-- {
		acc = acc*z + complex(float64(c[i]), 0)
	}

	return acc
}
