package lpc_test

import (
	"math"
	"math/rand/v2"
)

// sineSum is the four-component test waveform.
func sineSum(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		f := float64(i)
		x[i] = math.Sin(0.01*f) + 0.75*math.Sin(0.03*f) + 0.5*math.Sin(0.05*f) + 0.25*math.Sin(0.11*f)
	}

	return x
}

// arProcess drives a stable AR(2) filter with seeded white noise.
func arProcess(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	x := make([]float64, n)
	for i := range x {
		v := rng.NormFloat64()
		if i >= 1 {
			v += 1.3 * x[i-1]
		}
		if i >= 2 {
			v -= 0.6 * x[i-2]
		}
		x[i] = v
	}

	return x
}

func constant(n int, c float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = c
	}

	return x
}

func toFloat32(x []float64) []float32 {
	y := make([]float32, len(x))
	for i, v := range x {
		y[i] = float32(v)
	}

	return y
}

func energy[T float32 | float64](x []T) float64 {
	var e float64
	for _, v := range x {
		e += float64(v) * float64(v)
	}

	return e
}
