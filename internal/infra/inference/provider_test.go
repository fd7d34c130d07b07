package inference

import (
	"context"
	"testing"

	"catermatch/config"
	"catermatch/internal/domain/service"
	"catermatch/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramsWith(inf *config.InferenceConfig) Params {
	return Params{
		Config: &config.Config{Resolver: &config.ResolverConfig{Inference: inf}},
		Logger: discardLogger(),
	}
}

func TestNewStructuredInference_None(t *testing.T) {
	inf, err := NewStructuredInference(paramsWith(&config.InferenceConfig{Provider: "none"}))
	require.NoError(t, err)

	_, err = inf.Infer(context.Background(), "p", nil)
	assert.True(t, errors.Is(err, service.ErrInferenceUnavailable))
}

func TestNewStructuredInference_OpenAIWrapsBreaker(t *testing.T) {
	inf, err := NewStructuredInference(paramsWith(&config.InferenceConfig{
		Provider:          "openai",
		APIKey:            "sk-test",
		RequestsPerSecond: 1,
		Breaker:           testBreakerConfig(),
	}))
	require.NoError(t, err)

	_, ok := inf.(*breakerInference)
	assert.True(t, ok)
}

func TestNewStructuredInference_OpenAIWithoutKey(t *testing.T) {
	_, err := NewStructuredInference(paramsWith(&config.InferenceConfig{Provider: "openai"}))
	require.Error(t, err)
}

func TestNewStructuredInference_Unknown(t *testing.T) {
	_, err := NewStructuredInference(paramsWith(&config.InferenceConfig{Provider: "bard"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bard")
}
