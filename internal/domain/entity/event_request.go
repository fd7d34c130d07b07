// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of an event request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusMatching  RequestStatus = "matching"
	RequestStatusMatched   RequestStatus = "matched"
	RequestStatusBooked    RequestStatus = "booked"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the request has left the matching flow for good.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusBooked, RequestStatusCompleted, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

// EventRequest is a customer's catering need.
// It is created by the customer-facing form and only its status and resolved city are
// changed by the matching flow.
type EventRequest struct {
	ID                  uuid.UUID     // The Global Unique Identifier (GUID) for the request.
	CustomerID          uuid.UUID     // The customer who submitted the request.
	EventType           string        // e.g. "wedding", "corporate lunch".
	EventDate           time.Time     // The day of the event.
	EventTime           string        // Free-form start time, e.g. "18:30".
	GuestCount          int           `validate:"gt=0"`
	City                string        // Raw location text as typed by the customer.
	NormalizedCity      string        // Canonical city once resolved.
	CuisinePreferences  []string      // Requested cuisines, empty means "no preference".
	DietaryRequirements []string      // Requested dietary requirements, empty means none.
	ServiceStyle        string        // Optional, e.g. "buffet", "plated".
	BudgetTotal         *float64      `validate:"omitempty,gte=0"` // Total budget override.
	BudgetPerPerson     *float64      `validate:"omitempty,gte=0"` // Budget per guest.
	BudgetMax           *float64      `validate:"omitempty,gte=0"` // Upper per-guest budget of a range.
	Status              RequestStatus // Lifecycle status.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TotalBudget computes the request's total budget: the total override first, then
// per-person times guests, then max-per-person times guests. Zero when nothing is set.
func (r *EventRequest) TotalBudget() float64 {
	switch {
	case r.BudgetTotal != nil && *r.BudgetTotal > 0:
		return *r.BudgetTotal
	case r.BudgetPerPerson != nil && *r.BudgetPerPerson > 0:
		return *r.BudgetPerPerson * float64(r.GuestCount)
	case r.BudgetMax != nil && *r.BudgetMax > 0:
		return *r.BudgetMax * float64(r.GuestCount)
	default:
		return 0
	}
}
