// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a match once it has been handed to a caterer.
type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusViewed    MatchStatus = "viewed"
	MatchStatusContacted MatchStatus = "contacted"
	MatchStatusQuoted    MatchStatus = "quoted"
	MatchStatusAccepted  MatchStatus = "accepted"
	MatchStatusDeclined  MatchStatus = "declined"
)

// Match is a ranked association between one event request and one caterer.
type Match struct {
	ID                 uuid.UUID         `json:"id"`
	RequestID          uuid.UUID         `json:"request_id"`
	CatererID          uuid.UUID         `json:"caterer_id"`
	SemanticScore      float64           `json:"semantic_score"`      // Cuisine overlap contribution.
	DistanceScore      float64           `json:"distance_score"`      // Location contribution.
	CompatibilityScore float64           `json:"compatibility_score"` // Tier, dietary, capacity and style contributions.
	OverallScore       float64           `json:"overall_score"`       // Sum of all contributions, two decimals.
	DistanceKm         float64           `json:"distance_km"`         // Presentation distance, assumed when coordinates are missing.
	Rank               int               `json:"rank"`                // 1-based, unique per request.
	Reasons            map[string]string `json:"reasons"`             // Factor to human-readable justification.
	Status             MatchStatus       `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
}
