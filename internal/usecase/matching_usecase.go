package usecase

import (
	"context"

	"catermatch/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchOutcome summarises one matching run.
type MatchOutcome struct {
	RequestID          uuid.UUID             `json:"request_id"`
	MatchCount         int                   `json:"match_count"`
	TotalBudget        float64               `json:"total_budget"`
	Tier               entity.Tier           `json:"tier"`
	ResolvedCity       string                `json:"resolved_city"`
	LocationSource     entity.LocationSource `json:"location_source"`
	LocationConfidence entity.Confidence     `json:"location_confidence"`
	Matches            []*entity.Match       `json:"matches"`
}

// MatchingUsecase defines the request-to-caterer matching use cases
type MatchingUsecase interface {
	// MatchRequest runs matching for a request and replaces any earlier matches.
	MatchRequest(ctx context.Context, requestID uuid.UUID) (*MatchOutcome, error)

	// RequestMatchingAsync queues a matching run for the match worker.
	RequestMatchingAsync(ctx context.Context, requestID uuid.UUID) error

	// ListMatches returns the persisted matches of a request in rank order.
	ListMatches(ctx context.Context, requestID uuid.UUID) ([]*entity.Match, error)
}
