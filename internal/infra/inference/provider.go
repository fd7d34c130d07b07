package inference

import (
	"context"
	"log/slog"

	"catermatch/config"
	"catermatch/internal/domain/constants"
	"catermatch/internal/domain/service"
	"catermatch/internal/errors"

	"go.uber.org/fx"
)

// disabledInference is used when no provider is configured. Every call fails
// with ErrInferenceUnavailable so the resolver falls back to its default place.
type disabledInference struct{}

func (disabledInference) Infer(context.Context, string, map[string]any) (map[string]any, error) {
	return nil, service.ErrInferenceUnavailable
}

// Params holds dependencies for the inference provider, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewStructuredInference selects the inference backend from configuration.
func NewStructuredInference(params Params) (service.StructuredInference, error) {
	cfg := params.Config.Resolver.Inference
	logger := params.Logger

	switch cfg.Provider {
	case "", constants.InferenceProviderNone:
		logger.Info("Location inference disabled")

		return disabledInference{}, nil

	case constants.InferenceProviderOpenAI:
		client, err := NewOpenAIClient(cfg, logger)
		if err != nil {
			return nil, err
		}

		logger.Info("Using OpenAI-compatible location inference",
			slog.String("base_url", client.baseURL),
			slog.String("model", client.model),
		)

		return NewBreakerInference(client, cfg.Breaker, logger), nil

	default:
		return nil, errors.Errorf("unknown inference provider: %s", cfg.Provider)
	}
}

// Module provides the inference FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStructuredInference),
)
