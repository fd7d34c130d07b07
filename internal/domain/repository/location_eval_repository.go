package repository

import (
	"context"

	"catermatch/internal/domain/entity"
)

// LocationEvalRepository is the write-only sink of resolution audit records.
type LocationEvalRepository interface {
	// RecordEval appends one evaluation record.
	RecordEval(ctx context.Context, eval *entity.LocationEval) error
}
