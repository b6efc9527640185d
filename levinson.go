package lpc

import "fmt"

// RecursionMode selects how the Levinson-Durbin recursion handles steps whose
// reflection coefficient would leave the unit interval.
type RecursionMode int

const (
	// Unguarded is the classical recursion. Ill-conditioned input propagates
	// (energies may turn negative) and is reported as *IllConditionedError.
	Unguarded RecursionMode = iota
	// Guarded clamps the reflection coefficient of an ill-conditioned step to 0,
	// keeping |k| <= 1 and the energies non-increasing.
	Guarded
)

func (m RecursionMode) String() string {
	switch m {
	case Unguarded:
		return "unguarded"
	case Guarded:
		return "guarded"
	default:
		return fmt.Sprintf("RecursionMode(%d)", int(m))
	}
}

func (m RecursionMode) valid() bool {
	return m == Unguarded || m == Guarded
}

// Model is the result of a Levinson-Durbin solve of order p.
type Model[T Float] struct {
	// Coef holds p+1 coefficients, Coef[0] == 1.
	Coef []T
	// Energy[k] is the prediction error energy of the order-k model, Energy[0] == r[0].
	Energy []T
	// Reflection[k-1] is the reflection coefficient introduced at order k.
	Reflection []T
}

// LevinsonDurbin solves the Toeplitz normal equations for the autocorrelation
// r[0..p]. With Unguarded, an ill-conditioned step yields a complete model
// together with an *IllConditionedError.
func LevinsonDurbin[T Float](r []T, mode RecursionMode) (Model[T], error) {
	var s solver[T]
	err := s.solve(r, mode)
	if s.coef == nil {
		return Model[T]{}, err
	}

	return Model[T]{
		Coef:       s.coef,
		Energy:     s.energy,
		Reflection: s.refl,
	}, err
}

// solver keeps the scratch buffers of the recursion. coef and next are swapped
// after each order so the update never reads what it is writing.
type solver[T Float] struct {
	coef   []T
	next   []T
	energy []T
	refl   []T
}

func (s *solver[T]) reset(order int) {
	s.coef = resize(s.coef, order+1)
	s.next = resize(s.next, order+1)
	s.energy = resize(s.energy, order+1)
	s.refl = resize(s.refl, order)
}

// silence installs the all-zero model.
func (s *solver[T]) silence(order int) {
	s.reset(order)
	s.coef[0] = 1
}

func (s *solver[T]) solve(r []T, mode RecursionMode) error {
	if len(r) == 0 {
		return fmt.Errorf("%w: empty autocorrelation", ErrInvalidArgument)
	}
	if !mode.valid() {
		return fmt.Errorf("%w: recursion mode %v", ErrInvalidArgument, mode)
	}

	p := len(r) - 1
	s.reset(p)
	s.coef[0] = 1
	s.energy[0] = r[0]
	if p == 0 {
		return nil
	}
	if r[0] == 0 || !finite(r[0]) {
		s.coef, s.energy, s.refl = nil, nil, nil
		return fmt.Errorf("%w: r[0] = %v", ErrNumericDegeneracy, r[0])
	}

	var illErr error
	for k := 0; k < p; k++ {
		// order k -> k+1
		var num T
		for j := 0; j <= k; j++ {
			num += s.coef[j] * r[k+1-j]
		}
		e := s.energy[k]

		var lambda T
		switch {
		case mode == Guarded && (e == 0 || abs(num) > abs(e)):
			lambda = 0
		case e == 0:
			// the order-k model already predicts perfectly
			if num != 0 && illErr == nil {
				illErr = &IllConditionedError{Order: k + 1, Reflection: -float64(num) / float64(e)}
			}
			lambda = 0
		default:
			lambda = -num / e
		}
		if !finite(lambda) {
			s.coef, s.energy, s.refl = nil, nil, nil
			return fmt.Errorf("%w: reflection %v at order %d", ErrNumericDegeneracy, lambda, k+1)
		}
		if abs(lambda) > 1 && illErr == nil {
			illErr = &IllConditionedError{Order: k + 1, Reflection: float64(lambda)}
		}

		next := s.next
		next[0] = 1
		for i := 1; i <= k; i++ {
			next[i] = s.coef[i] + lambda*s.coef[k+1-i]
		}
		next[k+1] = lambda
		s.coef, s.next = next, s.coef

		s.energy[k+1] = e * (1 - lambda*lambda)
		s.refl[k] = lambda
	}

	return illErr
}
