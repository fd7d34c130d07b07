package usecase

import (
	"context"

	"catermatch/internal/domain/entity"
)

// LearnLocationInput is a human-curated alias mapping.
type LearnLocationInput struct {
	Alias     string         `json:"alias" validate:"required,max=200"`
	City      string         `json:"city" validate:"required,max=100"`
	Province  string         `json:"province" validate:"max=100"`
	Latitude  float64        `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64        `json:"longitude" validate:"gte=-180,lte=180"`
	AddedBy   entity.AddedBy `json:"added_by"`
}

// LocationResolver turns freeform location text into a canonical place.
type LocationResolver interface {
	// Resolve never fails: when every tier misses, the configured default place is
	// returned with low confidence.
	Resolve(ctx context.Context, input string) *entity.ResolvedLocation
}

// LocationUsecase defines the location resolution and learning use cases
type LocationUsecase interface {
	LocationResolver

	// LearnLocation stores an admin or user-correction alias, replacing any existing mapping.
	LearnLocation(ctx context.Context, input *LearnLocationInput) (*entity.LearnedLocation, error)

	// ListLearnedLocations returns the most used learned aliases.
	ListLearnedLocations(ctx context.Context, limit int) ([]*entity.LearnedLocation, error)
}
