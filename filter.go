package lpc

import (
	"fmt"

	"github.com/tomr-ninja/lpc/spectrum"
)

// Boundary selects how the filters treat samples before the start of the window.
// Coefficient vectors are taken to have coef[0] == 1.
type Boundary int

const (
	// ZeroHistory treats every sample before t = 0 as zero.
	ZeroHistory Boundary = iota
	// CopySource leaves the first p samples unfiltered: they are copied from the source.
	CopySource
	// Circular wraps indices modulo N. Only meaningful when the window is one
	// period of a repeating waveform.
	Circular
)

func (b Boundary) String() string {
	switch b {
	case ZeroHistory:
		return "zero-history"
	case CopySource:
		return "copy-source"
	case Circular:
		return "circular"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

func (b Boundary) valid() bool {
	return b == ZeroHistory || b == CopySource || b == Circular
}

// Residual writes the forward prediction error of x into dst:
//
//	dst[t] = x[t] + sum_{i=1..p} coef[i]*x[t-i]
//
// dst must not overlap x.
func Residual[T Float](coef, x, dst []T, b Boundary) error {
	if err := checkFilter(coef, x, dst, b); err != nil {
		return err
	}

	p := len(coef) - 1
	for t := range x {
		switch {
		case b == Circular:
			dst[t] = x[t] + lagSumCircular(coef, x, t)
		case b == CopySource && t < p:
			dst[t] = x[t]
		default:
			dst[t] = x[t] + lagSum(coef, nil, x, t)
		}
	}

	return nil
}

// ResidualWithHistory is Residual for a window preceded by history (oldest
// sample first). Missing history is zero.
func ResidualWithHistory[T Float](coef, history, x, dst []T) error {
	if err := checkFilter(coef, x, dst, ZeroHistory); err != nil {
		return err
	}
	for t := range x {
		dst[t] = x[t] + lagSum(coef, history, x, t)
	}

	return nil
}

// Predict writes the forward prediction of x into dst:
//
//	dst[t] = -sum_{i=1..p} coef[i]*x[t-i]
//
// With CopySource the first p samples are copied from x. dst must not overlap x.
func Predict[T Float](coef, x, dst []T, b Boundary) error {
	if err := checkFilter(coef, x, dst, b); err != nil {
		return err
	}

	p := len(coef) - 1
	for t := range x {
		switch {
		case b == Circular:
			dst[t] = -lagSumCircular(coef, x, t)
		case b == CopySource && t < p:
			dst[t] = x[t]
		default:
			dst[t] = -lagSum(coef, nil, x, t)
		}
	}

	return nil
}

// Synthesize inverts Residual for the same coefficients and boundary:
//
//	dst[t] = res[t] - sum_{i=1..p} coef[i]*dst[t-i]
//
// processed in increasing t. With Circular, dst[t-i] for t < i wraps to the
// end of the buffer; those samples are seeded by solving the circulant system
// in the frequency domain before the recursion runs. dst may alias res.
func Synthesize[T Float](coef, res, dst []T, b Boundary) error {
	if err := checkFilter(coef, res, dst, b); err != nil {
		return err
	}

	switch b {
	case Circular:
		return synthesizeCircular(spectrum.NewFFT(len(res)), coef, res, dst)
	case CopySource:
		p := len(coef) - 1
		copy(dst[:p], res[:p])
		synthesize(coef, nil, res, dst, p)
	default:
		synthesize(coef, nil, res, dst, 0)
	}

	return nil
}

// SynthesizeWithHistory inverts ResidualWithHistory given the same history.
func SynthesizeWithHistory[T Float](coef, history, res, dst []T) error {
	if err := checkFilter(coef, res, dst, ZeroHistory); err != nil {
		return err
	}
	synthesize(coef, history, res, dst, 0)

	return nil
}

func synthesize[T Float](coef, history, res, dst []T, from int) {
	for t := from; t < len(res); t++ {
		dst[t] = res[t] - lagSum(coef, history, dst, t)
	}
}

// synthesizeCircular recovers the last p samples of the periodic solution
// x = res / A (per DFT bin), then runs the recursion with them as history.
func synthesizeCircular[T Float](tr spectrum.Transformer, coef, res, dst []T) error {
	n := len(res)
	p := len(coef) - 1
	if p == 0 {
		copy(dst, res)
		return nil
	}

	seq := make([]float64, n)
	for i, v := range coef {
		seq[i] = float64(v)
	}
	den := tr.Forward(nil, seq)
	for i, v := range res {
		seq[i] = float64(v)
	}
	num := tr.Forward(nil, seq)
	for k := range num {
		if den[k] == 0 {
			return fmt.Errorf("%w: A(z) vanishes at bin %d", ErrNumericDegeneracy, k)
		}
		num[k] /= den[k]
	}
	seq = tr.Inverse(seq, num)

	tail := make([]T, p)
	for i := range tail {
		tail[i] = T(seq[n-p+i] / float64(n))
	}
	synthesize(coef, tail, res, dst, 0)

	return nil
}

// lagSum returns sum_{i=1..p} coef[i]*x[t-i], reading indices below zero
// from the end of history.
func lagSum[T Float](coef, history, x []T, t int) T {
	h := len(history)
	var sum T
	for i := 1; i < len(coef); i++ {
		j := t - i
		switch {
		case j >= 0:
			sum += coef[i] * x[j]
		case h+j >= 0:
			sum += coef[i] * history[h+j]
		}
	}

	return sum
}

func lagSumCircular[T Float](coef, x []T, t int) T {
	n := len(x)
	var sum T
	for i := 1; i < len(coef); i++ {
		sum += coef[i] * x[(n+t-i)%n]
	}

	return sum
}

func checkFilter[T Float](coef, x, dst []T, b Boundary) error {
	switch {
	case len(x) == 0:
		return ErrEmptySignal
	case len(dst) != len(x):
		return fmt.Errorf("%w: input %d, output %d", ErrSizeMismatch, len(x), len(dst))
	case len(coef) == 0:
		return fmt.Errorf("%w: empty coefficient vector", ErrInvalidArgument)
	case len(coef)-1 >= len(x):
		return fmt.Errorf("%w: order %d, signal length %d", ErrInvalidOrder, len(coef)-1, len(x))
	case !b.valid():
		return fmt.Errorf("%w: boundary %v", ErrInvalidArgument, b)
	}

	return nil
}
