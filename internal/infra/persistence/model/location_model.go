package model

import (
	"time"
)

// LearnedLocationModel is the GORM-specific struct for the 'learned_locations' table.
// The alias is stored normalized and is the primary key, which makes it the conflict target of upserts.
type LearnedLocationModel struct {
	Alias     string    `gorm:"type:varchar(255);primary_key"`
	City      string    `gorm:"type:varchar(100);not null"`
	Province  string    `gorm:"type:varchar(100);not null"`
	Latitude  float64   `gorm:"type:double precision;not null"`
	Longitude float64   `gorm:"type:double precision;not null"`
	UseCount  int64     `gorm:"not null;default:1;index:idx_learned_locations_use_count,sort:desc"`
	LastUsed  time.Time `gorm:"not null"`
	AddedBy   string    `gorm:"type:varchar(20);not null;default:'system'"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LearnedLocationModel) TableName() string {
	return "learned_locations"
}

// LocationEvalModel is the GORM-specific struct for the append-only 'location_evals' table.
type LocationEvalModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Input      string `gorm:"type:text;not null"`
	City       string `gorm:"type:varchar(100);not null"`
	Province   string `gorm:"type:varchar(100)"`
	Confidence string `gorm:"type:varchar(10);not null;index"`
	Source     string `gorm:"type:varchar(10);not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationEvalModel) TableName() string {
	return "location_evals"
}
