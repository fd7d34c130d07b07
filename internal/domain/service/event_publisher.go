package service

import (
	"context"
)

// MatchRequestedEvent asks the match worker to run matching for a request.
type MatchRequestedEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventID     string `json:"event_request_id"`
	RequestedAt int64  `json:"requested_at"` // Unix seconds
}

// MatchesReadyEvent announces that matches were persisted for a request.
type MatchesReadyEvent struct {
	RequestID    string   `json:"request_id,omitempty"` // For distributed tracing
	EventID      string   `json:"event_request_id"`
	MatchCount   int      `json:"match_count"`
	CatererIDs   []string `json:"caterer_ids"` // In rank order
	Tier         string   `json:"tier"`
	ResolvedCity string   `json:"resolved_city"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMatchRequested queues a matching run for async processing
	PublishMatchRequested(ctx context.Context, event *MatchRequestedEvent) error

	// PublishMatchesReady notifies downstream consumers about new matches
	PublishMatchesReady(ctx context.Context, event *MatchesReadyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
