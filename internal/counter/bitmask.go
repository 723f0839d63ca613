package counter

import (
	"time"

	"go.uber.org/zap"

	"inclexgo/internal/core"
	"inclexgo/internal/util"
)

// CountBitmask enumerates every non-empty subset of divisors as a bit
// pattern. Each subset contributes floor(upperBound / lcm(subset)), added for
// odd-sized subsets and subtracted for even-sized ones.
//
// Any LCM or running total that leaves the int64 range fails with
// core.ErrOverflow.
func CountBitmask(divisors []int64, upperBound int64, log *zap.Logger) (core.CountStats, error) {
	start := time.Now()
	if err := Validate(divisors, upperBound, core.MaxBitmaskDivisors); err != nil {
		return core.CountStats{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	n := len(divisors)
	total := core.NumNonEmptySubsets(n)
	progress := util.NewProgressLogger(log, total, "enumerating subsets")

	var sum int64
	for i := uint64(1); i <= total; i++ {
		s := core.Subset(i)
		lcm := int64(1)
		for k := 0; k < n; k++ {
			if !s.Contains(k) {
				continue
			}
			var err error
			if lcm, err = core.CheckedLcm(lcm, divisors[k]); err != nil {
				return core.CountStats{}, err
			}
		}
		term := upperBound / lcm
		if !s.Odd() {
			term = -term
		}
		var err error
		if sum, err = core.CheckedAdd(sum, term); err != nil {
			return core.CountStats{}, err
		}
		progress.Log()
	}
	progress.Finalize()

	return core.CountStats{
		Count:   sum,
		Subsets: total,
		Elapsed: time.Since(start),
	}, nil
}
