package lpc

import "fmt"

// AutocorrelationMode selects how lags reaching past the window edge are treated.
type AutocorrelationMode int

const (
	// Finite is the biased estimator: the window is zero-padded, lag k sums N-k products.
	Finite AutocorrelationMode = iota
	// Periodic treats the window as one period of a periodic process and wraps around.
	Periodic
)

func (m AutocorrelationMode) String() string {
	switch m {
	case Finite:
		return "finite"
	case Periodic:
		return "periodic"
	default:
		return fmt.Sprintf("AutocorrelationMode(%d)", int(m))
	}
}

func (m AutocorrelationMode) valid() bool {
	return m == Finite || m == Periodic
}

// Autocorrelation computes r[0..order] for signal x.
func Autocorrelation[T Float](x []T, order int, mode AutocorrelationMode) ([]T, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: order %d", ErrInvalidOrder, order)
	}
	r := make([]T, order+1)
	if err := AutocorrelationTo(r, x, mode); err != nil {
		return nil, err
	}

	return r, nil
}

// AutocorrelationTo is the allocation-free variant of Autocorrelation; the
// order is taken from len(r)-1.
func AutocorrelationTo[T Float](r, x []T, mode AutocorrelationMode) error {
	n := len(x)
	order := len(r) - 1
	switch {
	case n == 0:
		return ErrEmptySignal
	case order < 0 || order >= n:
		return fmt.Errorf("%w: order %d, signal length %d", ErrInvalidOrder, order, n)
	case !mode.valid():
		return fmt.Errorf("%w: autocorrelation mode %v", ErrInvalidArgument, mode)
	}

	for k := 0; k <= order; k++ {
		var sum T
		for i := 0; i < n-k; i++ {
			sum += x[i] * x[i+k]
		}
		if mode == Periodic {
			// wrapped tail: x[i] pairs with x[i+k-n]
			for i := n - k; i < n; i++ {
				sum += x[i] * x[i+k-n]
			}
		}
		r[k] = sum
	}

	return nil
}
