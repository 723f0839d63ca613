// Package inclex counts the integers in [1, N] divisible by at least one of a
// set of divisors, using the inclusion-exclusion principle.
package inclex

import (
	"time"

	"go.uber.org/zap"

	"inclexgo/internal/core"
	"inclexgo/internal/counter"
)

// Errors returned by Count. Test for them with errors.Is.
var (
	ErrInvalidDivisor     = core.ErrInvalidDivisor
	ErrOverflow           = core.ErrOverflow
	ErrNegativeUpperBound = core.ErrNegativeUpperBound
	ErrTooManyDivisors    = core.ErrTooManyDivisors
)

// Strategy selects how subsets are enumerated.
type Strategy = core.Strategy

// Enumeration strategies.
const (
	StrategyBitmask = core.StrategyBitmask
	StrategyPruned  = core.StrategyPruned
)

// Config is the counting configuration.
type Config = core.CountConfig

// DefaultConfig returns the default configuration: bitmask enumeration, no
// de-duplication.
func DefaultConfig() Config {
	return core.DefaultCountConfig()
}

// ParseStrategy maps "bitmask" or "pruned" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	return core.ParseStrategy(name)
}

// Result is the outcome of one count.
type Result struct {
	Count       int64
	Subsets     uint64
	Pruned      uint64
	Fingerprint uint64
	Strategy    Strategy
	Elapsed     time.Duration
}

// Counter runs counts with a fixed configuration. It holds no per-call state
// and may be shared between goroutines.
type Counter struct {
	config core.CountConfig
	log    *zap.Logger
}

// NewCounter creates a Counter. A nil logger disables logging.
func NewCounter(config *core.CountConfig, log *zap.Logger) *Counter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Counter{config: *config, log: log}
}

// Count returns how many integers in [1, upperBound] are divisible by at
// least one of divisors.
func (c *Counter) Count(divisors []int64, upperBound int64) (Result, error) {
	fp := core.Fingerprint(divisors)
	log := c.log.With(
		zap.Uint64("fingerprint", fp),
		zap.Int("divisors", len(divisors)),
		zap.Int64("upper_bound", upperBound),
		zap.Stringer("strategy", c.config.Strategy))

	stats, err := counter.Count(divisors, upperBound, &c.config, log)
	if err != nil {
		log.Debug("count failed", zap.Error(err))
		return Result{}, err
	}
	log.Debug("count done",
		zap.Int64("count", stats.Count),
		zap.Uint64("subsets", stats.Subsets),
		zap.Duration("elapsed", stats.Elapsed))

	return Result{
		Count:       stats.Count,
		Subsets:     stats.Subsets,
		Pruned:      stats.Pruned,
		Fingerprint: fp,
		Strategy:    c.config.Strategy,
		Elapsed:     stats.Elapsed,
	}, nil
}

// Count returns how many integers in [1, upperBound] are divisible by at
// least one of divisors, using the default configuration.
func Count(divisors []int64, upperBound int64) (int64, error) {
	cfg := DefaultConfig()
	res, err := NewCounter(&cfg, nil).Count(divisors, upperBound)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// CountBruteForce checks every integer in [1, upperBound] directly. It is
// meant for verifying results on small bounds.
func CountBruteForce(divisors []int64, upperBound int64) (int64, error) {
	return counter.CountBruteForce(divisors, upperBound)
}
