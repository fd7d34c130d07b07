// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"catermatch/internal/domain/entity"
	"catermatch/internal/errors"

	"github.com/google/uuid"
)

// ErrEventRequestNotFound is returned when an event request does not exist.
var ErrEventRequestNotFound = errors.New("event request not found")

// EventRequestRepository defines the event request operations the matching flow needs.
// Requests are created elsewhere; this side only reads them and moves their status.
type EventRequestRepository interface {
	// FindRequestByID retrieves an event request by its unique ID.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.EventRequest, error)

	// UpdateRequestStatus sets the status of an event request.
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error

	// MarkRequestMatched stores the resolved city and sets the status to matched.
	MarkRequestMatched(ctx context.Context, id uuid.UUID, normalizedCity string) error
}
