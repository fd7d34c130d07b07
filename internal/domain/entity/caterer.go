// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Caterer is a service provider as seen by the matching engine. It is owned by the
// profile-management side of the marketplace and treated as read-only here.
type Caterer struct {
	ID                  uuid.UUID    // The Global Unique Identifier (GUID) for the caterer.
	BusinessName        string       // Display name.
	IsActive            bool         // Only active caterers take part in matching.
	Tier                Tier         // Subscription tier.
	CuisineTypes        []string     // Cuisines the caterer offers.
	DietaryCapabilities []string     // e.g. "halal", "vegan", "kosher".
	ServiceStyles       []string     // e.g. "buffet", "plated", "food truck".
	MinGuests           int          // Smallest event the caterer takes on.
	MaxGuests           int          // Largest event, zero means no upper bound.
	Location            *Coordinates // Nil when the caterer never set a pin.
	City                string       // Free-form city of operation.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
