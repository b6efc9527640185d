// Package spectrum is the Fourier transform collaborator of the LPC core:
// a fixed-length real DFT and the magnitude spectra built on it.
package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrLength indicates a sequence whose length differs from the transform length.
var ErrLength = errors.New("spectrum: sequence length does not match transform length")

// floor keeps log-magnitudes finite for empty bins.
const floor = 1e-12

// Transformer is a real-input discrete Fourier transform of fixed length N.
//
// Forward returns the N/2+1 non-redundant coefficients of seq. Inverse
// returns the real sequence for those coefficients without normalization;
// callers divide by N.
type Transformer interface {
	Len() int
	Forward(dst []complex128, seq []float64) []complex128
	Inverse(dst []float64, coeff []complex128) []float64
}

// FFT is a Transformer backed by gonum's mixed-radix real FFT.
type FFT struct {
	fft *fourier.FFT
}

// NewFFT returns a transform for sequences of length n.
func NewFFT(n int) *FFT {
	return &FFT{fft: fourier.NewFFT(n)}
}

func (f *FFT) Len() int {
	return f.fft.Len()
}

func (f *FFT) Forward(dst []complex128, seq []float64) []complex128 {
	return f.fft.Coefficients(dst, seq)
}

func (f *FFT) Inverse(dst []float64, coeff []complex128) []float64 {
	return f.fft.Sequence(dst, coeff)
}

// Bins returns the number of non-redundant coefficients of an n-point transform.
func Bins(n int) int {
	return n/2 + 1
}

// Magnitude returns |X[k]| for k = 0..N/2.
func Magnitude(tr Transformer, seq []float64) ([]float64, error) {
	if len(seq) != tr.Len() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLength, len(seq), tr.Len())
	}

	coeff := tr.Forward(nil, seq)
	mag := make([]float64, len(coeff))
	for k, c := range coeff {
		mag[k] = cmplx.Abs(c)
	}

	return mag, nil
}

// LogMagnitude returns 20*log10(|X[k]|) for k = 0..N/2.
func LogMagnitude(tr Transformer, seq []float64) ([]float64, error) {
	mag, err := Magnitude(tr, seq)
	if err != nil {
		return nil, err
	}
	for k, m := range mag {
		mag[k] = 20 * math.Log10(math.Max(m, floor))
	}

	return mag, nil
}
