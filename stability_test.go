package lpc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomr-ninja/lpc"
)

func TestReflectionFromCoef(t *testing.T) {
	r, err := lpc.Autocorrelation(arProcess(300, 10), 12, lpc.Finite)
	require.NoError(t, err)
	m, err := lpc.LevinsonDurbin(r, lpc.Unguarded)
	require.NoError(t, err)

	refl, err := lpc.ReflectionFromCoef(m.Coef)
	require.NoError(t, err)
	require.Len(t, refl, len(m.Reflection))
	for i := range refl {
		require.InDelta(t, m.Reflection[i], refl[i], 1e-9, "k%d", i+1)
	}
	require.True(t, lpc.IsMinimumPhase(m.Coef))
}

func TestIsMinimumPhase(t *testing.T) {
	tests := []struct {
		coef []float64
		want bool
	}{
		{[]float64{1}, true},
		{[]float64{1, -0.5}, true},
		{[]float64{1, -2}, false},
		{[]float64{1, -1.3, 0.6}, true},
		{[]float64{1, 0, 1.5}, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, lpc.IsMinimumPhase(tt.coef), "%v", tt.coef)
	}

	_, err := lpc.ReflectionFromCoef([]float64{1, 0, 1.5})
	require.ErrorIs(t, err, lpc.ErrIllConditioned)

	_, err = lpc.ReflectionFromCoef([]float64{})
	require.ErrorIs(t, err, lpc.ErrInvalidArgument)
}
