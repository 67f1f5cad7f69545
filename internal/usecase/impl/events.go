// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
)

// newDomainEvent stamps an event with a fresh id, the request id of the caller and the current time.
func newDomainEvent(ctx context.Context, eventType service.EventType, userID uuid.UUID, attributes map[string]string) *service.DomainEvent {
	return &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     userID.String(),
		OccurredAt: time.Now().UTC(),
		Attributes: attributes,
	}
}

// publishEvent hands the event to the publisher. The write it describes has already been
// committed, so a failure is logged and swallowed.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.DomainEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("event_id", event.EventID),
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}
