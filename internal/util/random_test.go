package util

import (
	"reflect"
	"testing"
)

func TestRandomDivisors(t *testing.T) {
	a := RandomDivisors(50, 12, 42)
	b := RandomDivisors(50, 12, 42)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different divisors")
	}
	if len(a) != 50 {
		t.Fatalf("len = %d, want 50", len(a))
	}
	for i, d := range a {
		if d < 1 || d > 12 {
			t.Errorf("divisor[%d] = %d out of [1, 12]", i, d)
		}
	}
	if got := RandomDivisors(0, 12, 1); len(got) != 0 {
		t.Errorf("RandomDivisors(0, ...) = %v, want empty", got)
	}
	if got := RandomDivisors(3, 0, 1); len(got) != 0 {
		t.Errorf("RandomDivisors(3, 0, ...) = %v, want empty", got)
	}
}
