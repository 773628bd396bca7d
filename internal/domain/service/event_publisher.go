package service

import (
	"context"
	"time"
)

// EventType names a lifecycle event.
type EventType string

const (
	EventRetailerApplied     EventType = "retailer.applied"
	EventRetailerReviewed    EventType = "retailer.reviewed"
	EventDealSubmitted       EventType = "deal.submitted"
	EventDealReviewed        EventType = "deal.reviewed"
	EventPriceAlertTriggered EventType = "price_alert.triggered"
)

// LifecycleEvent is published whenever a retailer, deal or price alert changes state.
// Downstream consumers (email, analytics) are external.
type LifecycleEvent struct {
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	Type        EventType         `json:"type"`
	AggregateID string            `json:"aggregate_id"`
	ActorID     string            `json:"actor_id,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
	Data        map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a lifecycle event.
	Publish(ctx context.Context, event *LifecycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
