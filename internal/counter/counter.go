package counter

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"inclexgo/internal/core"
)

// Count validates the inputs against config and runs the configured
// enumeration. With config.Deduplicate set, repeated divisors are dropped
// first; the count is the same either way.
func Count(divisors []int64, upperBound int64, config *core.CountConfig, log *zap.Logger) (core.CountStats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := Validate(divisors, upperBound, config.EffectiveMaxDivisors()); err != nil {
		return core.CountStats{}, err
	}
	if config.Deduplicate {
		before := len(divisors)
		divisors = core.Normalize(divisors)
		if before != len(divisors) {
			log.Debug("dropped duplicate divisors", zap.Int("before", before), zap.Int("after", len(divisors)))
		}
	}

	switch config.Strategy {
	case core.StrategyBitmask:
		return CountBitmask(divisors, upperBound, log)
	case core.StrategyPruned:
		return CountPruned(divisors, upperBound, log)
	default:
		return core.CountStats{}, errors.Errorf("unknown strategy %v", config.Strategy)
	}
}
