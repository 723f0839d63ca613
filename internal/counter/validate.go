// Package counter counts the integers in [1, upperBound] divisible by at
// least one divisor, by inclusion-exclusion over divisor subsets.
package counter

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"inclexgo/internal/core"
)

// Validate checks the inputs of a count. maxDivisors of 0 means no limit.
// Every non-positive divisor is reported, not only the first.
func Validate(divisors []int64, upperBound int64, maxDivisors int) error {
	if upperBound < 0 {
		return errors.Wrapf(core.ErrNegativeUpperBound, "upper bound %d", upperBound)
	}
	var result *multierror.Error
	for i, d := range divisors {
		if d <= 0 {
			result = multierror.Append(result, &core.InvalidDivisorError{Index: i, Value: d})
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	if maxDivisors > 0 && len(divisors) > maxDivisors {
		return errors.Wrapf(core.ErrTooManyDivisors, "%d divisors, limit is %d", len(divisors), maxDivisors)
	}
	return nil
}
