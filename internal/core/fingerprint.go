package core

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/slices"
)

// Fingerprint returns a 64-bit xxHash of the divisor set. Divisors are sorted
// and de-duplicated first, so any two inputs with the same count share a
// fingerprint regardless of order or repetition.
func Fingerprint(divisors []int64) uint64 {
	norm := Normalize(divisors)
	d := xxhash.New()
	var buf [8]byte
	for _, v := range norm {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Normalize returns a sorted copy of divisors with duplicates removed.
// The input is not modified.
func Normalize(divisors []int64) []int64 {
	out := slices.Clone(divisors)
	slices.Sort(out)
	return slices.Compact(out)
}
