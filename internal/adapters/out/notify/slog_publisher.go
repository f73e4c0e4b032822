// Package notify delivers order status change notifications to downstream
// consumers. The current implementation writes structured log records;
// broadcast channels can replace it behind the same port.
package notify

import (
	"context"
	"log/slog"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/ports"
)

// SlogPublisher emits order status change events as structured log records.
// Publishing happens after the transition has committed, so failures here
// never affect the stored state.
type SlogPublisher struct {
	logger *slog.Logger
}

// NewSlogPublisher creates a publisher writing to the given logger.
func NewSlogPublisher(logger *slog.Logger) *SlogPublisher {
	return &SlogPublisher{
		logger: logger.With("component", "order_status_publisher"),
	}
}

// Publish writes one record per committed status transition.
func (p *SlogPublisher) Publish(ctx context.Context, event ports.OrderStatusChanged) {
	attrs := []any{
		"order_id", event.OrderID.String(),
		"entity_kind", event.EntityKind,
		"new_status", event.NewStatus,
		"actor_id", event.ActorID.String(),
		"occurred_at", event.OccurredAt,
	}
	if event.OrderGroupID != nil {
		attrs = append(attrs, "order_group_id", event.OrderGroupID.String())
	}

	p.logger.InfoContext(ctx, "Order status changed", attrs...)
}
