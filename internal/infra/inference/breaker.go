package inference

import (
	"context"
	"log/slog"

	"catermatch/config"
	"catermatch/internal/domain/service"
	"catermatch/internal/errors"
	"catermatch/internal/infra/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
)

const breakerName = "inference"

// breakerInference guards an inference backend with a circuit breaker so a failing
// provider is skipped quickly instead of stalling every resolution.
type breakerInference struct {
	next    service.StructuredInference
	breaker *gobreaker.CircuitBreaker[map[string]any]
}

// NewBreakerInference wraps next with the configured breaker.
func NewBreakerInference(next service.StructuredInference, cfg config.BreakerConfig, logger *slog.Logger) service.StructuredInference {
	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}

			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			logger.Warn("Circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		// A caller giving up is not a backend failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(stateValue(gobreaker.StateClosed))

	return &breakerInference{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[map[string]any](settings),
	}
}

func (b *breakerInference) Infer(ctx context.Context, prompt string, schema map[string]any) (map[string]any, error) {
	out, err := b.breaker.Execute(func() (map[string]any, error) {
		return b.next.Infer(ctx, prompt, schema)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.Wrap(service.ErrInferenceUnavailable, err.Error())
		}

		return nil, err
	}

	return out, nil
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
