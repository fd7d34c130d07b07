package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventRequestModel is the GORM-specific struct for the 'event_requests' table.
// Rows are written by the customer-facing form; matching only touches status and normalized_city.
type EventRequestModel struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID          uuid.UUID                   `gorm:"type:uuid;not null;index"`
	EventType           string                      `gorm:"type:varchar(100);not null"`
	EventDate           time.Time                   `gorm:"type:date;not null"`
	EventTime           string                      `gorm:"type:varchar(20)"`
	GuestCount          int                         `gorm:"not null;check:guest_count > 0"`
	City                string                      `gorm:"type:varchar(255);not null"`
	NormalizedCity      string                      `gorm:"type:varchar(100)"`
	CuisinePreferences  datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	DietaryRequirements datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	ServiceStyle        string                      `gorm:"type:varchar(50)"`
	BudgetTotal         *float64                    `gorm:"type:decimal(12,2)"`
	BudgetPerPerson     *float64                    `gorm:"type:decimal(12,2)"`
	BudgetMax           *float64                    `gorm:"type:decimal(12,2)"`
	Status              string                      `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventRequestModel) TableName() string {
	return "event_requests"
}
