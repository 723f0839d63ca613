package counter

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"inclexgo/internal/core"
)

// prunedSearch holds the state of one depth-first walk.
type prunedSearch struct {
	divisors   []int64
	upperBound int64
	sum        int64
	subsets    uint64
	pruned     uint64
}

// CountPruned produces the same count as CountBitmask but generates subsets
// depth-first, dropping a branch as soon as its LCM exceeds upperBound: the
// LCM never shrinks as divisors are added, so every extension of that branch
// contributes zero. An LCM too large for int64 is past upperBound as well,
// which means LCM overflow cannot fail this strategy and there is no limit on
// the number of divisors.
func CountPruned(divisors []int64, upperBound int64, log *zap.Logger) (core.CountStats, error) {
	start := time.Now()
	if err := Validate(divisors, upperBound, 0); err != nil {
		return core.CountStats{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	ps := &prunedSearch{divisors: divisors, upperBound: upperBound}
	if err := ps.walk(0, 1, 0); err != nil {
		return core.CountStats{}, err
	}
	log.Debug("pruned search done",
		zap.Uint64("subsets", ps.subsets),
		zap.Uint64("pruned", ps.pruned))

	return core.CountStats{
		Count:   ps.sum,
		Subsets: ps.subsets,
		Pruned:  ps.pruned,
		Elapsed: time.Since(start),
	}, nil
}

// walk extends the current subset (size members, LCM lcm) with each divisor
// at index >= from.
func (ps *prunedSearch) walk(from int, lcm int64, size int) error {
	for k := from; k < len(ps.divisors); k++ {
		next, err := core.CheckedLcm(lcm, ps.divisors[k])
		if err != nil && !errors.Is(err, core.ErrOverflow) {
			return err
		}
		if err != nil || next > ps.upperBound {
			ps.pruned++
			continue
		}
		term := ps.upperBound / next
		if size%2 == 1 { // the new subset has an even size
			term = -term
		}
		if ps.sum, err = core.CheckedAdd(ps.sum, term); err != nil {
			return err
		}
		ps.subsets++
		if err := ps.walk(k+1, next, size+1); err != nil {
			return err
		}
	}
	return nil
}
