package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CatererModel is the GORM-specific struct for the 'caterers' table.
type CatererModel struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessName        string                      `gorm:"type:varchar(255);not null"`
	IsActive            bool                        `gorm:"not null;default:true;index"`
	Tier                string                      `gorm:"type:varchar(20);not null;default:'basic'"`
	CuisineTypes        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	DietaryCapabilities datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	ServiceStyles       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	MinGuests           int                         `gorm:"not null;default:0"`
	MaxGuests           int                         `gorm:"not null;default:0"` // 0 means no upper bound
	Latitude            *float64                    `gorm:"type:double precision"`
	Longitude           *float64                    `gorm:"type:double precision"`
	City                string                      `gorm:"type:varchar(100)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CatererModel) TableName() string {
	return "caterers"
}
