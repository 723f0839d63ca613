package util

import (
	"math/rand"
	"time"
)

// RandomSeed returns a time based seed.
func RandomSeed() int64 {
	return time.Now().UnixNano()
}

// RandomDivisors returns n divisors drawn uniformly from [1, maxDivisor].
// Repeats are allowed. The same seed always yields the same slice.
func RandomDivisors(n int, maxDivisor int64, seed int64) []int64 {
	if n <= 0 || maxDivisor < 1 {
		return []int64{}
	}
	rng := rand.New(rand.NewSource(seed))
	divisors := make([]int64, n)
	for i := range divisors {
		divisors[i] = 1 + rng.Int63n(maxDivisor)
	}
	return divisors
}
