package core

import "testing"

func TestSubset(t *testing.T) {
	tests := []struct {
		s        Subset
		size     int
		odd      bool
		contains []int
	}{
		{0b1, 1, true, []int{0}},
		{0b10110, 3, true, []int{1, 2, 4}},
		{0b11, 2, false, []int{0, 1}},
		{Subset(1) << 62, 1, true, []int{62}},
		{Subset(1<<63 - 1), 63, true, nil},
	}
	for _, tt := range tests {
		if got := tt.s.Size(); got != tt.size {
			t.Errorf("Subset(%b).Size() = %d, want %d", tt.s, got, tt.size)
		}
		if got := tt.s.Odd(); got != tt.odd {
			t.Errorf("Subset(%b).Odd() = %t, want %t", tt.s, got, tt.odd)
		}
		for _, k := range tt.contains {
			if !tt.s.Contains(k) {
				t.Errorf("Subset(%b).Contains(%d) = false, want true", tt.s, k)
			}
		}
	}
	if Subset(0b101).Contains(1) {
		t.Errorf("Subset(101).Contains(1) = true, want false")
	}
}

func TestNumNonEmptySubsets(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{0, 0},
		{1, 1},
		{5, 31},
		{20, 1<<20 - 1},
		{MaxBitmaskDivisors, 1<<63 - 1},
	}
	for _, tt := range tests {
		if got := NumNonEmptySubsets(tt.n); got != tt.want {
			t.Errorf("NumNonEmptySubsets(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
