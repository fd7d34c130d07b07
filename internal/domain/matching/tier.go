// Package matching scores caterers against an event request and ranks them.
// Everything here is pure: no I/O and no clock.
package matching

import "catermatch/internal/domain/entity"

// Default budget thresholds in ZAR.
const (
	DefaultProThreshold      = 20000.0
	DefaultBusinessThreshold = 50000.0
)

// TierThresholds are the lower bounds of the pro and business budget buckets.
type TierThresholds struct {
	Pro      float64
	Business float64
}

// DefaultTierThresholds returns the thresholds used when none are configured.
func DefaultTierThresholds() TierThresholds {
	return TierThresholds{Pro: DefaultProThreshold, Business: DefaultBusinessThreshold}
}

// TierFor maps a non-negative total budget onto a tier. Callers reject negative or
// non-finite budgets before calling.
func (t TierThresholds) TierFor(totalBudget float64) entity.Tier {
	switch {
	case totalBudget >= t.Business:
		return entity.TierBusiness
	case totalBudget >= t.Pro:
		return entity.TierPro
	default:
		return entity.TierBasic
	}
}

// TierFor classifies a budget with the default thresholds.
func TierFor(totalBudget float64) entity.Tier {
	return DefaultTierThresholds().TierFor(totalBudget)
}
