package lpc

import "fmt"

// Option configures an Analyzer.
type Option func(*config) error

type config struct {
	autocorrelation AutocorrelationMode
	recursion       RecursionMode
	boundary        Boundary
	silentModel     bool
}

func defaultConfig() config {
	return config{
		autocorrelation: Finite,
		recursion:       Unguarded,
		boundary:        ZeroHistory,
	}
}

// WithAutocorrelation selects the autocorrelation estimator. Default: Finite.
func WithAutocorrelation(mode AutocorrelationMode) Option {
	return func(c *config) error {
		if !mode.valid() {
			return fmt.Errorf("%w: autocorrelation mode %v", ErrInvalidArgument, mode)
		}
		c.autocorrelation = mode
		return nil
	}
}

// WithRecursion selects the Levinson-Durbin variant. Default: Unguarded.
func WithRecursion(mode RecursionMode) Option {
	return func(c *config) error {
		if !mode.valid() {
			return fmt.Errorf("%w: recursion mode %v", ErrInvalidArgument, mode)
		}
		c.recursion = mode
		return nil
	}
}

// WithBoundary selects the filter boundary used by the Analyzer's
// Residual, Predict and Synthesize. Default: ZeroHistory.
func WithBoundary(b Boundary) Option {
	return func(c *config) error {
		if !b.valid() {
			return fmt.Errorf("%w: boundary %v", ErrInvalidArgument, b)
		}
		c.boundary = b
		return nil
	}
}

// WithSilentModel makes Calc answer a zero-energy window with the all-zero
// model (coef = [1, 0, ...], zero energies) instead of ErrNumericDegeneracy.
func WithSilentModel() Option {
	return func(c *config) error {
		c.silentModel = true
		return nil
	}
}
