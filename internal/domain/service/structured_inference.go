// Package service defines interfaces for external capabilities the domain depends on.
package service

import (
	"context"

	"catermatch/internal/errors"
)

// ErrInferenceUnavailable is returned when the inference backend cannot be used at all,
// e.g. the provider is disabled or the circuit breaker is open.
var ErrInferenceUnavailable = errors.New("inference unavailable")

// StructuredInference produces a JSON object constrained by a JSON schema.
type StructuredInference interface {
	// Infer sends the prompt and returns the decoded object. The caller still validates the
	// result against the schema; implementations only promise a JSON object.
	Infer(ctx context.Context, prompt string, schema map[string]any) (map[string]any, error)
}
