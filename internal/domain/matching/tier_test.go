package matching

import (
	"testing"

	"catermatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		budget float64
		want   entity.Tier
	}{
		{budget: 0, want: entity.TierBasic},
		{budget: 19999.99, want: entity.TierBasic},
		{budget: 20000, want: entity.TierPro},
		{budget: 30000, want: entity.TierPro},
		{budget: 49999.99, want: entity.TierPro},
		{budget: 50000, want: entity.TierBusiness},
		{budget: 1e9, want: entity.TierBusiness},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.budget), "budget %v", tt.budget)
	}
}

func TestTierThresholds_Custom(t *testing.T) {
	th := TierThresholds{Pro: 10000, Business: 25000}

	assert.Equal(t, entity.TierBasic, th.TierFor(9999))
	assert.Equal(t, entity.TierPro, th.TierFor(10000))
	assert.Equal(t, entity.TierBusiness, th.TierFor(25000))
}

func TestTierFor_Monotonic(t *testing.T) {
	prev := 0
	for budget := 0.0; budget <= 100000; budget += 500 {
		rank := TierFor(budget).Rank()
		assert.GreaterOrEqual(t, rank, prev)
		prev = rank
	}
}
