package lpc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the root of every caller-side precondition failure.
	ErrInvalidArgument = errors.New("lpc: invalid argument")

	// ErrEmptySignal indicates a zero-length input signal.
	ErrEmptySignal = fmt.Errorf("%w: empty signal", ErrInvalidArgument)

	// ErrInvalidOrder indicates a negative order or one not below the signal length.
	ErrInvalidOrder = fmt.Errorf("%w: order must satisfy 0 <= order < len(signal)", ErrInvalidArgument)

	// ErrSizeMismatch indicates input and output buffers of different lengths.
	ErrSizeMismatch = fmt.Errorf("%w: buffer length mismatch", ErrInvalidArgument)

	// ErrNumericDegeneracy indicates a zero (or non-finite) lag-0 autocorrelation,
	// or a transfer function whose denominator vanishes.
	ErrNumericDegeneracy = errors.New("lpc: numeric degeneracy")

	// ErrIllConditioned indicates a reflection coefficient with magnitude above 1.
	ErrIllConditioned = errors.New("lpc: ill-conditioned autocorrelation")

	// ErrNoModel indicates the analyzer holds no valid model.
	ErrNoModel = errors.New("lpc: no model, Calc has not succeeded")
)

// IllConditionedError reports the first recursion step whose reflection
// coefficient left the unit interval.
type IllConditionedError struct {
	Order      int
	Reflection float64
}

func (e *IllConditionedError) Error() string {
	return fmt.Sprintf("lpc: ill-conditioned at order %d (reflection %g)", e.Order, e.Reflection)
}

func (e *IllConditionedError) Unwrap() error {
	return ErrIllConditioned
}
