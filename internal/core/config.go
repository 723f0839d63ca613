package core

import (
	"fmt"
	"time"
)

// Strategy selects how subsets are enumerated.
type Strategy int

const (
	// StrategyBitmask walks every non-empty subset as a uint64 bit pattern.
	StrategyBitmask Strategy = iota
	// StrategyPruned walks subsets depth-first and drops a branch once its
	// LCM exceeds the upper bound.
	StrategyPruned
)

func (s Strategy) String() string {
	switch s {
	case StrategyBitmask:
		return "bitmask"
	case StrategyPruned:
		return "pruned"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "bitmask", "":
		return StrategyBitmask, nil
	case "pruned":
		return StrategyPruned, nil
	}
	return 0, fmt.Errorf("unknown strategy %q (want bitmask or pruned)", name)
}

// CountStats describes the work done by one count.
type CountStats struct {
	Count   int64
	Subsets uint64 // Terms evaluated
	Pruned  uint64 // Branches abandoned, pruned strategy only
	Elapsed time.Duration
}

// CountConfig holds the parameters of a count.
type CountConfig struct {
	Strategy    Strategy
	MaxDivisors int  // Bitmask only; capped at MaxBitmaskDivisors
	Deduplicate bool // Drop repeated divisors before enumerating
	Verbose     bool
}

// DefaultCountConfig creates a configuration with default values.
func DefaultCountConfig() CountConfig {
	return CountConfig{
		Strategy:    StrategyBitmask,
		MaxDivisors: MaxBitmaskDivisors,
		Deduplicate: false,
		Verbose:     false,
	}
}

// EffectiveMaxDivisors returns the divisor limit enforced for the configured
// strategy, or 0 when there is none.
func (c *CountConfig) EffectiveMaxDivisors() int {
	if c.Strategy != StrategyBitmask {
		return 0
	}
	if c.MaxDivisors <= 0 || c.MaxDivisors > MaxBitmaskDivisors {
		return MaxBitmaskDivisors
	}
	return c.MaxDivisors
}
