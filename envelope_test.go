package lpc_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomr-ninja/lpc"
)

func TestFreqResponseDC(t *testing.T) {
	x := arProcess(256, 9)
	coef := model(t, x, 8, lpc.Finite)
	b := []float64{0.7}

	h := make([]complex128, 64)
	require.NoError(t, lpc.FreqResponse(b, coef, h))

	var sum float64
	for _, c := range coef {
		sum += c
	}
	require.InDelta(t, b[0]/sum, real(h[0]), 1e-9)
	require.InDelta(t, 0, imag(h[0]), 1e-9)
}

func TestFreqResponseDirectEvaluation(t *testing.T) {
	b := []float64{1, 0.25}
	a := []float64{1, -0.9, 0.2}
	const n = 10

	h := make([]complex128, n)
	require.NoError(t, lpc.FreqResponse(b, a, h))

	eval := func(c []float64, w float64) complex128 {
		var sum complex128
		for i, v := range c {
			sum += complex(v, 0) * cmplx.Exp(complex(0, -w*float64(i)))
		}
		return sum
	}
	for k := range h {
		w := 2 * math.Pi * float64(k) / n
		want := eval(b, w) / eval(a, w)
		require.InDelta(t, real(want), real(h[k]), 1e-12, "point %d", k)
		require.InDelta(t, imag(want), imag(h[k]), 1e-12, "point %d", k)
	}

	db := make([]float64, n)
	require.NoError(t, lpc.LogMagnitude(b, a, db))
	for k := range db {
		require.InDelta(t, 20*math.Log10(cmplx.Abs(h[k])), db[k], 1e-12)
	}
}

func TestLogMagnitudeFlat(t *testing.T) {
	db := make([]float32, 8)
	require.NoError(t, lpc.LogMagnitude([]float32{2}, []float32{1}, db))
	for _, v := range db {
		require.InDelta(t, 20*math.Log10(2), float64(v), 1e-5)
	}
}

func TestFreqResponseErrors(t *testing.T) {
	require.ErrorIs(t, lpc.FreqResponse([]float64{1}, []float64{1}, nil), lpc.ErrInvalidArgument)
	require.ErrorIs(t, lpc.FreqResponse([]float64{}, []float64{1}, make([]complex128, 4)), lpc.ErrInvalidArgument)
	require.ErrorIs(t, lpc.FreqResponse([]float64{1}, []float64{1, -1}, make([]complex128, 4)), lpc.ErrNumericDegeneracy)
}
