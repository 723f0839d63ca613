package core

import (
	"errors"
	"testing"
)

func TestInvalidDivisorError(t *testing.T) {
	err := error(&InvalidDivisorError{Index: 2, Value: -4})
	if !errors.Is(err, ErrInvalidDivisor) {
		t.Errorf("errors.Is(%v, ErrInvalidDivisor) = false", err)
	}
	want := "divisor[2] = -4: divisor must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
