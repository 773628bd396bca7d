// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/domain/service"
)

// publishEvent sends a lifecycle event on a best-effort basis. Delivery failures are logged and
// never fail the operation that produced the event.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.LifecycleEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish lifecycle event",
			slog.String("type", string(event.Type)),
			slog.String("aggregate_id", event.AggregateID),
			slog.Any("error", err),
		)
	}
}
