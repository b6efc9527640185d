package lpc

import "fmt"

// ReflectionFromCoef recovers the reflection coefficients k[0..p-1] of a
// coefficient vector by the step-down recursion. It fails with
// ErrIllConditioned as soon as a coefficient reaches magnitude 1, since the
// recursion cannot continue past it.
func ReflectionFromCoef[T Float](coef []T) ([]T, error) {
	if len(coef) == 0 {
		return nil, fmt.Errorf("%w: empty coefficient vector", ErrInvalidArgument)
	}

	p := len(coef) - 1
	refl := make([]T, p)
	cur := make([]T, p+1)
	prev := make([]T, p+1)
	copy(cur, coef)
	for i := p; i >= 1; i-- {
		k := cur[i]
		refl[i-1] = k
		if abs(k) >= 1 {
			return refl, &IllConditionedError{Order: i, Reflection: float64(k)}
		}
		d := 1 - k*k
		for j := 1; j < i; j++ {
			prev[j] = (cur[j] - k*cur[i-j]) / d
		}
		cur, prev = prev, cur
	}

	return refl, nil
}

// IsMinimumPhase reports whether every zero of A(z) lies strictly inside the
// unit circle, i.e. whether the synthesis filter 1/A(z) is stable.
func IsMinimumPhase[T Float](coef []T) bool {
	_, err := ReflectionFromCoef(coef)
	return err == nil
}
