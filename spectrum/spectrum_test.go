package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFFTRoundTrip(t *testing.T) {
	for _, n := range []int{8, 12, 128} {
		tr := NewFFT(n)
		require.Equal(t, n, tr.Len())

		seq := make([]float64, n)
		for i := range seq {
			seq[i] = math.Sin(0.3*float64(i)) + 0.1*float64(i%3)
		}

		coeff := tr.Forward(nil, seq)
		require.Len(t, coeff, Bins(n))

		back := tr.Inverse(nil, coeff)
		for i := range seq {
			require.InDelta(t, seq[i], back[i]/float64(n), 1e-9)
		}
	}
}

func TestMagnitude(t *testing.T) {
	const n = 16
	tr := NewFFT(n)

	// cosine at bin 2 with amplitude 1 puts n/2 into bin 2
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = math.Cos(2 * math.Pi * 2 * float64(i) / n)
	}

	mag, err := Magnitude(tr, seq)
	require.NoError(t, err)
	require.Len(t, mag, n/2+1)
	for k, m := range mag {
		if k == 2 {
			require.InDelta(t, n/2, m, 1e-9)
		} else {
			require.InDelta(t, 0, m, 1e-9)
		}
	}

	db, err := LogMagnitude(tr, seq)
	require.NoError(t, err)
	require.InDelta(t, 20*math.Log10(n/2), db[2], 1e-9)
	for _, v := range db {
		require.False(t, math.IsInf(v, 0))
	}

	_, err = Magnitude(tr, seq[:3])
	require.ErrorIs(t, err, ErrLength)
}
