package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MatchModel is the GORM-specific struct for the 'matches' table.
type MatchModel struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primary_key"`
	RequestID          uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_matches_request_rank,priority:1;uniqueIndex:idx_matches_request_caterer,priority:1"`
	CatererID          uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_matches_request_caterer,priority:2"`
	SemanticScore      float64           `gorm:"type:decimal(4,2);not null"`
	DistanceScore      float64           `gorm:"type:decimal(4,2);not null"`
	CompatibilityScore float64           `gorm:"type:decimal(4,2);not null"`
	OverallScore       float64           `gorm:"type:decimal(4,2);not null"`
	DistanceKm         float64           `gorm:"type:decimal(8,1);not null"`
	Rank               int               `gorm:"not null;uniqueIndex:idx_matches_request_rank,priority:2"`
	Reasons            datatypes.JSONMap `gorm:"type:jsonb;not null"`
	Status             string            `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}
