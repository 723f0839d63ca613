package core

import "math/bits"

// MaxBitmaskDivisors is the widest divisor set a Subset can enumerate:
// 1<<N must still fit in a uint64.
const MaxBitmaskDivisors = 63

// Subset is a bit pattern over divisor indices; bit k set means divisor k is
// included.
type Subset uint64

// Size returns the number of included divisors.
func (s Subset) Size() int {
	return bits.OnesCount64(uint64(s))
}

// Odd reports whether the subset has an odd number of members, which gives
// its term a positive sign.
func (s Subset) Odd() bool {
	return s.Size()&1 == 1
}

// Contains reports whether divisor k is included.
func (s Subset) Contains(k int) bool {
	return s&(1<<uint(k)) != 0
}

// NumNonEmptySubsets returns 2^n - 1 for n <= MaxBitmaskDivisors.
func NumNonEmptySubsets(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return (uint64(1) << uint(n)) - 1
}
