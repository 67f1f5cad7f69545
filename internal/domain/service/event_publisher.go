package service

import (
	"context"
	"time"
)

// EventType names a domain event published for downstream consumers.
type EventType string

const (
	EventOnboardingCompleted EventType = "onboarding.completed"
	EventTierChanged         EventType = "profile.tier_changed"
	EventNDASigned           EventType = "deal.nda_signed"
	EventOfferSubmitted      EventType = "deal.offer_submitted"
)

// DomainEvent represents a change other systems (CRM, email, billing) react to
type DomainEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventID    string            `json:"event_id"`
	Type       EventType         `json:"type"`
	UserID     string            `json:"user_id"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish publishes a domain event for async processing
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
