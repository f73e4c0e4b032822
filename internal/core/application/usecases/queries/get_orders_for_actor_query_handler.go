package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
)

// GetOrdersForActorQueryHandler reads visible orders straight from the
// database. The read side bypasses the aggregates; only the scoping rules of
// the access policies are reproduced in SQL.
type GetOrdersForActorQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForActorQueryHandler creates a handler for visibility-scoped
// order listings. Requires a GORM database connection.
func NewGetOrdersForActorQueryHandler(db *gorm.DB) GetOrdersForActorQueryHandler {
	return GetOrdersForActorQueryHandler{db: db}
}

// Handle executes the listing. An actor with no membership in the acting
// organization, or a membership the scoping rules do not recognize, gets an
// empty result rather than an error.
func (h GetOrdersForActorQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForActorQuery,
) ([]GetOrdersForActorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, err := h.resolveScope(ctx, query.ActorID(), query.ActingOrgID())
	if err != nil {
		return nil, err
	}

	const base = `
		SELECT
			id,
			placed_by_org_id,
			vessel_id,
			port_id,
			status,
			total_price_cents
		FROM orders
	`

	var rowsQuery *gorm.DB
	switch scope {
	case scopePlatform:
		rowsQuery = h.db.WithContext(ctx).Raw(base + ` ORDER BY id`)
	case scopePlacing:
		rowsQuery = h.db.WithContext(ctx).Raw(
			base+` WHERE placed_by_org_id = ? ORDER BY id`,
			query.ActingOrgID().String())
	case scopeFulfilling:
		rowsQuery = h.db.WithContext(ctx).Raw(
			base+` WHERE id IN (
				SELECT order_id FROM order_groups WHERE fulfilling_org_id = ?
			) ORDER BY id`,
			query.ActingOrgID().String())
	default:
		return []GetOrdersForActorQueryResponse{}, nil
	}

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersForActorQueryResponse, 0)

	for rows.Next() {
		var (
			id, placedBy, vesselID, portID uuid.UUID
			status                         string
			totalPrice                     int64
		)

		if err = rows.Scan(&id, &placedBy, &vesselID, &portID, &status, &totalPrice); err != nil {
			return nil, err
		}

		resp, convErr := newOrderResponse(id, placedBy, vesselID, portID, status, totalPrice)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

type visibilityScope int

const (
	scopeNone visibilityScope = iota
	scopePlatform
	scopePlacing
	scopeFulfilling
)

// resolveScope maps the actor's membership in the acting organization to a
// visibility scope. Platform membership in any organization wins first.
func (h GetOrdersForActorQueryHandler) resolveScope(
	ctx context.Context,
	actorID, actingOrgID kernel.UUID,
) (visibilityScope, error) {
	var platform bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM memberships
			WHERE actor_id = ? AND business_type = ?
		)
	`, actorID.String(), actor.BusinessTypePortzappTeam.String()).Scan(&platform).Error
	if err != nil {
		return scopeNone, err
	}
	if platform {
		return scopePlatform, nil
	}

	var businessType string
	err = h.db.WithContext(ctx).Raw(`
		SELECT business_type FROM memberships
		WHERE actor_id = ? AND organization_id = ?
	`, actorID.String(), actingOrgID.String()).Scan(&businessType).Error
	if err != nil {
		return scopeNone, err
	}

	switch businessType {
	case actor.BusinessTypeVesselOwner.String():
		return scopePlacing, nil
	case actor.BusinessTypeShippingAgency.String():
		return scopeFulfilling, nil
	default:
		return scopeNone, nil
	}
}

func newOrderResponse(
	id, placedBy, vesselID, portID uuid.UUID,
	status string,
	totalPrice int64,
) (GetOrdersForActorQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrdersForActorQueryResponse{}, err
	}
	placedByID, err := kernel.UUIDFromBytes(placedBy[:])
	if err != nil {
		return GetOrdersForActorQueryResponse{}, err
	}
	vID, err := kernel.UUIDFromBytes(vesselID[:])
	if err != nil {
		return GetOrdersForActorQueryResponse{}, err
	}
	pID, err := kernel.UUIDFromBytes(portID[:])
	if err != nil {
		return GetOrdersForActorQueryResponse{}, err
	}
	parsed, err := order.OrderStatusFromString(status)
	if err != nil {
		return GetOrdersForActorQueryResponse{}, err
	}

	return GetOrdersForActorQueryResponse{
		ID:              orderID,
		PlacedByOrgID:   placedByID,
		VesselID:        vID,
		PortID:          pID,
		Status:          parsed,
		TotalPriceCents: totalPrice,
	}, nil
}
