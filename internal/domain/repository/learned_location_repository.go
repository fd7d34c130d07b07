package repository

import (
	"context"

	"catermatch/internal/domain/entity"
	"catermatch/internal/errors"
)

// ErrLearnedLocationNotFound is returned when no learned alias matches.
var ErrLearnedLocationNotFound = errors.New("learned location not found")

// LearnedLocationRepository is the mutable alias store consulted before the static alias table.
// Implementations must make each operation atomic per alias.
type LearnedLocationRepository interface {
	// TouchLearnedLocation looks up a normalized alias and, on a hit, increments its use count
	// and refreshes its last-used time in the same step. Returns ErrLearnedLocationNotFound on a miss.
	TouchLearnedLocation(ctx context.Context, alias string) (*entity.LearnedLocation, error)

	// UpsertLearnedLocation inserts the alias with a use count of one, or increments the use count
	// of an existing alias. Admin and user-correction entries also replace the stored place;
	// system entries never do.
	UpsertLearnedLocation(ctx context.Context, location *entity.LearnedLocation) (*entity.LearnedLocation, error)

	// ListLearnedLocations returns the most used aliases first, at most limit entries.
	ListLearnedLocations(ctx context.Context, limit int) ([]*entity.LearnedLocation, error)
}
