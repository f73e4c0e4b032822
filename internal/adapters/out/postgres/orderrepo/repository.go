package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its groups and service lines in one write set.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order, groups []*order.OrderGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	for _, g := range groups {
		if err := g.Validate(); err != nil {
			return err
		}
	}

	dto := orderFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	for _, g := range groups {
		groupDTO := groupFromDomain(g)
		if err := r.db.WithContext(ctx).Create(&groupDTO).Error; err != nil {
			return err
		}
		for _, line := range g.Services() {
			lineDTO := lineFromDomain(g.ID(), line)
			if err := r.db.WithContext(ctx).Create(&lineDTO).Error; err != nil {
				return err
			}
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order's own fields.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := orderFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":            dto.Status,
			"total_price_cents": dto.TotalPriceCents,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return orderToDomain(dto)
}

// GetGroup retrieves a single order group with its service lines.
func (r *GormOrderRepository) GetGroup(ctx context.Context, id kernel.UUID) (*order.OrderGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderGroupId", id.String())
		}
		return nil, err
	}

	lines, err := r.linesForGroup(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return groupToDomain(dto, lines)
}

// GetGroupsForOrder retrieves all order groups belonging to an order.
func (r *GormOrderRepository) GetGroupsForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.OrderGroup, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderGroupDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	groups := make([]*order.OrderGroup, 0, len(dtos))
	for _, dto := range dtos {
		lines, linesErr := r.linesForGroup(ctx, dto.ID)
		if linesErr != nil {
			return nil, linesErr
		}
		g, convErr := groupToDomain(dto, lines)
		if convErr != nil {
			return nil, convErr
		}
		groups = append(groups, g)
	}

	return groups, nil
}

// UpdateGroupStatus persists a group transition guarded by the status the
// caller read. The WHERE clause carries the expected status; when a
// concurrent writer moved the group first, zero rows match and the caller
// gets errs.ErrConcurrentModification.
func (r *GormOrderRepository) UpdateGroupStatus(
	ctx context.Context,
	group *order.OrderGroup,
	expected order.Status,
) error {
	if err := group.Validate(); err != nil {
		return err
	}

	dto := groupFromDomain(group)
	result := r.db.WithContext(ctx).Model(&OrderGroupDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(map[string]any{
			"status":      dto.Status,
			"accepted_at": dto.AcceptedAt,
			"accepted_by": dto.AcceptedBy,
			"rejected_at": dto.RejectedAt,
			"notes":       dto.Notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrConcurrentModification
	}

	r.tracker.TrackAggregate(group.ID(), group)
	return nil
}

// UpdateGroupServiceStatus persists a service line transition under the same
// compare-and-swap guard as group transitions.
func (r *GormOrderRepository) UpdateGroupServiceStatus(
	ctx context.Context,
	groupID kernel.UUID,
	line *order.OrderGroupService,
	expected order.Status,
) error {
	if err := errors.Join(groupID.Validate(), line.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderGroupServiceDTO{}).
		Where("id = ? AND order_group_id = ? AND status = ?",
			line.ID().Bytes(), groupID.Bytes(), expected.String()).
		Updates(map[string]any{
			"status": line.Status().String(),
			"notes":  line.Notes(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrConcurrentModification
	}

	return nil
}

// DeleteGroup removes a group and its service lines. The pending guard lives
// in the WHERE clause so a group accepted after the caller's read survives.
func (r *GormOrderRepository) DeleteGroup(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id.Bytes(), order.StatusPending.String()).
		Delete(&OrderGroupDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrConcurrentModification
	}

	return r.db.WithContext(ctx).
		Where("order_group_id = ?", id.Bytes()).
		Delete(&OrderGroupServiceDTO{}).Error
}

// GetOrdersNeedingRollup retrieves orders whose stored status disagrees with
// the rollup of their groups' statuses. The CASE expression mirrors
// order.RollupStatus precedence.
func (r *GormOrderRepository) GetOrdersNeedingRollup(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.*
		FROM orders o
		LEFT JOIN (
			SELECT
				order_id,
				COUNT(*) AS total,
				COUNT(*) FILTER (WHERE status = 'rejected') AS rejected,
				COUNT(*) FILTER (WHERE status = 'completed') AS completed,
				COUNT(*) FILTER (WHERE status = 'in_progress') AS in_progress,
				COUNT(*) FILTER (WHERE status = 'accepted') AS accepted,
				COUNT(*) FILTER (
					WHERE status NOT IN ('rejected', 'completed', 'in_progress', 'accepted')
				) AS pending
			FROM order_groups
			GROUP BY order_id
		) g ON g.order_id = o.id
		WHERE o.status <> CASE
			WHEN COALESCE(g.total, 0) = 0 THEN 'pending'
			WHEN g.rejected = g.total THEN 'cancelled'
			WHEN g.rejected + g.completed = g.total AND g.completed > 0 THEN 'completed'
			WHEN g.in_progress > 0 OR g.completed > 0 THEN 'in_progress'
			WHEN g.pending = 0 AND g.accepted > 0 THEN 'accepted'
			ELSE 'pending'
		END
		ORDER BY o.id
	`).Scan(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := orderToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) linesForGroup(ctx context.Context, groupID any) ([]OrderGroupServiceDTO, error) {
	var lines []OrderGroupServiceDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&lines, "order_group_id = ?", groupID).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}
