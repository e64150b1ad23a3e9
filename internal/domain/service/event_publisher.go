package service

import (
	"context"
	"time"
)

// Refreshable provider snapshots
const (
	RefreshSourceWeather     = "weather"
	RefreshSourceCompetitors = "competitors"
	RefreshSourceEvents      = "events"
)

// RefreshEvent asks the refresher worker to drop and re-warm cached snapshots.
type RefreshEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	CityID      string    `json:"city_id"`
	Sources     []string  `json:"sources"`
	RequestedAt time.Time `json:"requested_at"`
}

// RefreshPublisher publishes refresh events to a message queue.
type RefreshPublisher interface {
	PublishRefreshEvent(ctx context.Context, event *RefreshEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
