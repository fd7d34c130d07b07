package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Resolver)
	require.NotNil(t, cfg.Resolver.Inference)
	require.NotNil(t, cfg.Matching)

	assert.Equal(t, "postgres", cfg.Resolver.LearnedStore)
	assert.Equal(t, "Johannesburg", cfg.Resolver.DefaultLocation.City)
	assert.Equal(t, 2*time.Second, cfg.Resolver.EvalTimeout)
	assert.Equal(t, "none", cfg.Resolver.Inference.Provider)
	assert.Equal(t, 8*time.Second, cfg.Resolver.Inference.Timeout)
	assert.InDelta(t, 0.6, cfg.Resolver.Inference.Breaker.FailureRatio, 1e-9)
	assert.Equal(t, 10, cfg.Matching.MaxMatches)
	assert.InDelta(t, 0.1, cfg.Matching.MinScore, 1e-9)
	assert.InDelta(t, 20000, cfg.Matching.TierThresholds.Pro, 1e-9)
	assert.InDelta(t, 50000, cfg.Matching.TierThresholds.Business, 1e-9)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Resolver: &ResolverConfig{
			LearnedStore:    "redis",
			DefaultLocation: DefaultLocationConfig{City: "Cape Town", Province: "Western Cape"},
			Inference:       &InferenceConfig{Provider: "openai", Timeout: time.Second},
		},
		Matching: &MatchingConfig{
			MaxMatches:     5,
			TierThresholds: TierThresholdsConfig{Pro: 10000, Business: 30000},
		},
	}

	applyDefaults(cfg)

	assert.Equal(t, "redis", cfg.Resolver.LearnedStore)
	assert.Equal(t, "Cape Town", cfg.Resolver.DefaultLocation.City)
	assert.Equal(t, "openai", cfg.Resolver.Inference.Provider)
	assert.Equal(t, time.Second, cfg.Resolver.Inference.Timeout)
	assert.Equal(t, 5, cfg.Matching.MaxMatches)
	assert.InDelta(t, 30000, cfg.Matching.TierThresholds.Business, 1e-9)
}

func TestApplyDefaults_BusinessBelowPro(t *testing.T) {
	cfg := &Config{Matching: &MatchingConfig{TierThresholds: TierThresholdsConfig{Pro: 80000, Business: 1000}}}

	applyDefaults(cfg)

	assert.GreaterOrEqual(t, cfg.Matching.TierThresholds.Business, cfg.Matching.TierThresholds.Pro)
}
