package inference

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"catermatch/config"
	"catermatch/internal/domain/service"
	"catermatch/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInference struct {
	calls int
	err   error
	out   map[string]any
}

func (s *stubInference) Infer(context.Context, string, map[string]any) (map[string]any, error) {
	s.calls++

	return s.out, s.err
}

func testBreakerConfig() config.BreakerConfig {
	return config.BreakerConfig{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  3,
		FailureRatio: 0.5,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBreakerInference_PassesThrough(t *testing.T) {
	stub := &stubInference{out: map[string]any{"city": "Cape Town"}}
	inf := NewBreakerInference(stub, testBreakerConfig(), discardLogger())

	out, err := inf.Infer(context.Background(), "p", nil)
	require.NoError(t, err)
	assert.Equal(t, "Cape Town", out["city"])
}

func TestBreakerInference_OpensAfterFailures(t *testing.T) {
	stub := &stubInference{err: errors.New("upstream down")}
	inf := NewBreakerInference(stub, testBreakerConfig(), discardLogger())

	for range 3 {
		_, err := inf.Infer(context.Background(), "p", nil)
		require.Error(t, err)
		assert.False(t, errors.Is(err, service.ErrInferenceUnavailable))
	}

	_, err := inf.Infer(context.Background(), "p", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInferenceUnavailable))
	assert.Equal(t, 3, stub.calls)
}

func TestBreakerInference_CancellationDoesNotTrip(t *testing.T) {
	stub := &stubInference{err: errors.Wrap(context.Canceled, "caller left")}
	inf := NewBreakerInference(stub, testBreakerConfig(), discardLogger())

	for range 5 {
		_, err := inf.Infer(context.Background(), "p", nil)
		require.Error(t, err)
		assert.False(t, errors.Is(err, service.ErrInferenceUnavailable))
	}

	assert.Equal(t, 5, stub.calls)
}
