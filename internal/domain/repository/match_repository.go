package repository

import (
	"context"

	"catermatch/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchRepository defines the persistence operations for match records.
type MatchRepository interface {
	// CreateMatches inserts all matches in a single batch.
	CreateMatches(ctx context.Context, matches []*entity.Match) error

	// DeleteMatchesByRequest removes every match of a request. Used before re-matching.
	DeleteMatchesByRequest(ctx context.Context, requestID uuid.UUID) error

	// FindMatchesByRequest retrieves the matches of a request ordered by rank.
	FindMatchesByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Match, error)
}
