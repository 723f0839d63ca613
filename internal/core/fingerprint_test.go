package core

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	in := []int64{8, 2, 7, 2, 3, 8}
	got := Normalize(in)
	want := []int64{2, 3, 7, 8}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize(%v) = %v, want %v", in, got, want)
	}
	if !reflect.DeepEqual(in, []int64{8, 2, 7, 2, 3, 8}) {
		t.Errorf("Normalize modified its input: %v", in)
	}
	if got := Normalize(nil); len(got) != 0 {
		t.Errorf("Normalize(nil) = %v, want empty", got)
	}
}

func TestFingerprint(t *testing.T) {
	base := Fingerprint([]int64{2, 3, 6, 7, 8})
	same := [][]int64{
		{8, 7, 6, 3, 2},
		{3, 2, 8, 6, 7},
		{2, 3, 6, 7, 8, 8, 2},
	}
	for _, s := range same {
		if got := Fingerprint(s); got != base {
			t.Errorf("Fingerprint(%v) = %x, want %x", s, got, base)
		}
	}
	if Fingerprint([]int64{2, 3, 6, 7}) == base {
		t.Errorf("Fingerprint of a different set collides with %x", base)
	}
	if Fingerprint(nil) != Fingerprint([]int64{}) {
		t.Errorf("Fingerprint(nil) != Fingerprint(empty)")
	}
}
