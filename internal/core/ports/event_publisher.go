package ports

import (
	"context"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

// OrderStatusChanged describes a committed status transition. It carries
// everything a downstream channel or audit log needs to attribute the change.
type OrderStatusChanged struct {
	OrderID      kernel.UUID
	OrderGroupID *kernel.UUID
	EntityKind   string
	NewStatus    string
	ActorID      kernel.UUID
	OccurredAt   time.Time
}

// OrderStatusPublisher notifies downstream consumers after a successful
// transition. Publishing happens after commit; a delivery failure must not
// roll back the transition, so implementations log and move on.
type OrderStatusPublisher interface {
	Publish(ctx context.Context, event OrderStatusChanged)
}
