// Package entity contains the core business objects of the project.
package entity

import "time"

// Confidence describes how much a resolved location can be trusted.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// IsValid checks if the Confidence is a valid value.
func (c Confidence) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	default:
		return false
	}
}

// LocationSource names the resolver tier that produced a location.
type LocationSource string

const (
	LocationSourceLearned LocationSource = "learned"
	LocationSourceAlias   LocationSource = "alias"
	LocationSourceAI      LocationSource = "ai"
)

// AddedBy is the provenance of a learned alias.
type AddedBy string

const (
	AddedBySystem         AddedBy = "system"
	AddedByAdmin          AddedBy = "admin"
	AddedByUserCorrection AddedBy = "user_correction"
)

// IsValid checks if the AddedBy is a valid value.
func (a AddedBy) IsValid() bool {
	switch a {
	case AddedBySystem, AddedByAdmin, AddedByUserCorrection:
		return true
	default:
		return false
	}
}

// Overrides reports whether an entry of this provenance replaces an existing mapping.
// System inferences never replace what is already learned; humans do.
func (a AddedBy) Overrides() bool {
	return a == AddedByAdmin || a == AddedByUserCorrection
}

// ResolvedLocation is the canonical place a piece of location text resolved to.
type ResolvedLocation struct {
	City       string         `json:"city"`
	Province   string         `json:"province"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Confidence Confidence     `json:"confidence"`
	Source     LocationSource `json:"source"`
}

// HasCoordinates reports whether the location carries a usable point.
// The zero point lies in the Gulf of Guinea and stands for "unknown".
func (l *ResolvedLocation) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// Coordinates returns the resolved point, or nil when it is unknown.
func (l *ResolvedLocation) Coordinates() *Coordinates {
	if !l.HasCoordinates() {
		return nil
	}

	return &Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

// LearnedLocation is an alias the system has learned to map to a canonical place.
type LearnedLocation struct {
	Alias     string    // Normalized (trimmed, lower-cased) alias, unique.
	City      string    // Canonical city.
	Province  string    // Canonical province.
	Latitude  float64   // Latitude of the city centre.
	Longitude float64   // Longitude of the city centre.
	UseCount  int64     // Number of writes and hits, never decremented.
	LastUsed  time.Time // Last hit or write.
	AddedBy   AddedBy   // Provenance of the mapping.
	CreatedAt time.Time
}

// LocationEval is an immutable audit record of one resolution.
type LocationEval struct {
	Input      string
	City       string
	Province   string
	Confidence Confidence
	Source     LocationSource
	CreatedAt  time.Time
}
