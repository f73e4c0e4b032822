package ports

import (
	"context"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their order groups. Orders and groups live in one consistency boundary:
// loading an order brings its groups along, and status writes on groups use
// a compare-and-swap discipline so concurrent transitions serialize.
type OrderRepository interface {
	// Add persists a new order together with its order groups and service
	// lines.
	Add(ctx context.Context, aggregate *order.Order, groups []*order.OrderGroup) error

	// Update persists changes to an existing order's own fields (status
	// rollup, total).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetGroup retrieves a single order group with its service lines.
	GetGroup(ctx context.Context, id kernel.UUID) (*order.OrderGroup, error)

	// GetGroupsForOrder retrieves all order groups belonging to an order.
	GetGroupsForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.OrderGroup, error)

	// UpdateGroupStatus persists a group's new status and acceptance
	// bookkeeping, guarded by the status the caller read. If another writer
	// moved the group first, no row matches and errs.ErrConcurrentModification
	// is returned without touching anything.
	UpdateGroupStatus(ctx context.Context, group *order.OrderGroup, expected order.Status) error

	// UpdateGroupServiceStatus persists a service line's new status under
	// the same compare-and-swap guard.
	UpdateGroupServiceStatus(
		ctx context.Context,
		groupID kernel.UUID,
		line *order.OrderGroupService,
		expected order.Status,
	) error

	// DeleteGroup removes a group and its service lines. Only pending
	// groups may be removed; the guard is enforced in the WHERE clause.
	DeleteGroup(ctx context.Context, id kernel.UUID) error

	// GetOrdersNeedingRollup retrieves orders whose stored status disagrees
	// with the rollup of their groups' statuses.
	GetOrdersNeedingRollup(ctx context.Context) ([]*order.Order, error)
}
