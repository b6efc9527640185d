package lpc

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomr-ninja/lpc/spectrum"
)

// Analyzer estimates an order-p autoregressive model of a signal window.
//
// An Analyzer owns its buffers and reuses them across calls to Calc, so it
// must not be used from several goroutines at once. Slices returned by the
// accessors are views into those buffers and are overwritten by the next Calc.
type Analyzer[T Float] struct {
	order  int
	cfg    config
	acf    []T
	solver solver[T]
	ready  bool
	fft    *spectrum.FFT
}

// New returns an Analyzer of the given order.
func New[T Float](order int, opts ...Option) (*Analyzer[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	a := &Analyzer[T]{cfg: cfg}
	if err := a.SetOrder(order); err != nil {
		return nil, err
	}

	return a, nil
}

// SetOrder changes the model order and discards the current model.
// A negative order is rejected and leaves the Analyzer unchanged.
func (a *Analyzer[T]) SetOrder(order int) error {
	if order < 0 {
		return fmt.Errorf("%w: order %d", ErrInvalidOrder, order)
	}
	a.order = order
	a.acf = resize(a.acf, order+1)
	a.solver.reset(order)
	a.ready = false

	return nil
}

func (a *Analyzer[T]) Order() int {
	return a.order
}

// Calc rebuilds the autocorrelation and the model from signal.
//
// With the Unguarded recursion an ill-conditioned window returns an
// *IllConditionedError but leaves the propagated model readable. Any other
// error leaves the Analyzer without a model.
func (a *Analyzer[T]) Calc(signal []T) error {
	a.ready = false
	a.acf = resize(a.acf, a.order+1)
	if err := AutocorrelationTo(a.acf, signal, a.cfg.autocorrelation); err != nil {
		return err
	}

	err := a.solver.solve(a.acf, a.cfg.recursion)
	switch {
	case err == nil:
	case errors.Is(err, ErrNumericDegeneracy) && a.cfg.silentModel:
		a.solver.silence(a.order)
		err = nil
	case errors.Is(err, ErrIllConditioned):
	default:
		return err
	}
	a.ready = true

	return err
}

// Autocorrelation returns r[0..p] of the last window.
func (a *Analyzer[T]) Autocorrelation() []T {
	return a.acf
}

// Coef returns coef[0..p], coef[0] == 1, or nil without a model.
func (a *Analyzer[T]) Coef() []T {
	if !a.ready {
		return nil
	}
	return a.solver.coef
}

// Energy returns e[0..p], the prediction error energy per order.
func (a *Analyzer[T]) Energy() []T {
	if !a.ready {
		return nil
	}
	return a.solver.energy
}

// Reflection returns the p reflection coefficients.
func (a *Analyzer[T]) Reflection() []T {
	if !a.ready {
		return nil
	}
	return a.solver.refl
}

// Gain returns sqrt(e[p]), the numerator of the model's transfer function.
// It is 0 whenever e[p] <= 0, including an Unguarded model whose energy
// went negative.
func (a *Analyzer[T]) Gain() T {
	if !a.ready {
		return 0
	}
	e := a.solver.energy[a.order]
	if e <= 0 {
		return 0
	}
	return T(math.Sqrt(float64(e)))
}

// PredictionGain returns e[0]/e[p], the energy reduction achieved by the model.
func (a *Analyzer[T]) PredictionGain() T {
	if !a.ready {
		return 0
	}
	e0, ep := a.solver.energy[0], a.solver.energy[a.order]
	switch {
	case e0 == 0:
		return 1
	case ep == 0:
		return T(math.Inf(1))
	}
	return e0 / ep
}

func (a *Analyzer[T]) Residual(x, dst []T) error {
	if !a.ready {
		return ErrNoModel
	}
	return Residual(a.solver.coef, x, dst, a.cfg.boundary)
}

func (a *Analyzer[T]) Predict(x, dst []T) error {
	if !a.ready {
		return ErrNoModel
	}
	return Predict(a.solver.coef, x, dst, a.cfg.boundary)
}

// Synthesize reconstructs a signal from a residual produced by Residual on
// the same Analyzer state.
func (a *Analyzer[T]) Synthesize(res, dst []T) error {
	if !a.ready {
		return ErrNoModel
	}
	if a.cfg.boundary != Circular {
		return Synthesize(a.solver.coef, res, dst, a.cfg.boundary)
	}

	if err := checkFilter(a.solver.coef, res, dst, Circular); err != nil {
		return err
	}
	if a.fft == nil || a.fft.Len() != len(res) {
		a.fft = spectrum.NewFFT(len(res))
	}
	return synthesizeCircular(a.fft, a.solver.coef, res, dst)
}

// FreqResponse evaluates Gain()/A(z) at len(dst) points on the unit circle.
// A model with negative e[p] has no gain and is reported as ErrIllConditioned.
func (a *Analyzer[T]) FreqResponse(dst []complex128) error {
	if err := a.checkGain(); err != nil {
		return err
	}
	return FreqResponse([]T{a.Gain()}, a.solver.coef, dst)
}

// Envelope writes the log-magnitude spectral envelope of the model in dB.
// With e[p] == 0 every point is -Inf.
func (a *Analyzer[T]) Envelope(dst []T) error {
	if err := a.checkGain(); err != nil {
		return err
	}
	return LogMagnitude([]T{a.Gain()}, a.solver.coef, dst)
}

func (a *Analyzer[T]) checkGain() error {
	if !a.ready {
		return ErrNoModel
	}
	if e := a.solver.energy[a.order]; e < 0 {
		return fmt.Errorf("%w: e[%d] = %v", ErrIllConditioned, a.order, e)
	}

	return nil
}
