// Package core provides the arithmetic primitives, configuration and error
// types shared by the counters.
package core

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Gcd returns the greatest common divisor of a and b using the Euclidean
// algorithm. Inputs are expected to be non-negative. Gcd(0, 0) is 0.
func Gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lcm returns the least common multiple of a and b.
// Division happens before multiplication to keep the intermediate small.
// The caller is responsible for overflow; see CheckedLcm.
func Lcm[T constraints.Integer](a, b T) T {
	g := Gcd(a, b)
	if g == 0 {
		panic("lcm of zero and zero")
	}
	return a / g * b
}

// CheckedLcm returns lcm(a, b) for positive a and b, or an error wrapping
// ErrOverflow when the result does not fit in an int64.
func CheckedLcm(a, b int64) (int64, error) {
	if a <= 0 || b <= 0 {
		return 0, errors.Wrapf(ErrInvalidDivisor, "lcm(%d, %d)", a, b)
	}
	q := a / Gcd(a, b)
	hi, lo := bits.Mul64(uint64(q), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, errors.Wrapf(ErrOverflow, "lcm(%d, %d)", a, b)
	}
	return int64(lo), nil
}

// LcmList folds CheckedLcm over values starting from 1.
// An empty list yields 1.
func LcmList(values []int64) (int64, error) {
	result := int64(1)
	for _, v := range values {
		var err error
		if result, err = CheckedLcm(result, v); err != nil {
			return 0, err
		}
	}
	return result, nil
}

// CheckedAdd returns a+b or an error wrapping ErrOverflow.
func CheckedAdd(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}
	return a + b, nil
}
