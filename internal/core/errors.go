package core

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDivisor is returned for a divisor that is zero or negative.
	ErrInvalidDivisor = errors.New("divisor must be positive")
	// ErrOverflow is returned when an LCM or the running count leaves the int64 range.
	ErrOverflow = errors.New("integer overflow")
	// ErrNegativeUpperBound is returned for an upper bound below zero.
	ErrNegativeUpperBound = errors.New("upper bound must not be negative")
	// ErrTooManyDivisors is returned when the divisor set is wider than the subset mask.
	ErrTooManyDivisors = errors.New("too many divisors")
)

// InvalidDivisorError identifies an offending divisor by position.
type InvalidDivisorError struct {
	Index int
	Value int64
}

func (e *InvalidDivisorError) Error() string {
	return fmt.Sprintf("divisor[%d] = %d: %v", e.Index, e.Value, ErrInvalidDivisor)
}

func (e *InvalidDivisorError) Unwrap() error {
	return ErrInvalidDivisor
}
