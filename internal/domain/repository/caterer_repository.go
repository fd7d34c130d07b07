package repository

import (
	"context"

	"catermatch/internal/domain/entity"
)

// CatererRepository defines read access to the caterer pool.
type CatererRepository interface {
	// FindActiveCaterers retrieves every caterer whose active flag is set.
	FindActiveCaterers(ctx context.Context) ([]*entity.Caterer, error)
}
