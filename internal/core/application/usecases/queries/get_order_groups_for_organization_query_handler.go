package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
)

// GetOrderGroupsForOrganizationQueryHandler reads a shipping agency's work
// queue from the database.
type GetOrderGroupsForOrganizationQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderGroupsForOrganizationQueryHandler creates a handler for agency
// work queue listings. Requires a GORM database connection.
func NewGetOrderGroupsForOrganizationQueryHandler(db *gorm.DB) GetOrderGroupsForOrganizationQueryHandler {
	return GetOrderGroupsForOrganizationQueryHandler{db: db}
}

// Handle executes the listing. Actors without a shipping agency membership
// in the organization get an empty result.
func (h GetOrderGroupsForOrganizationQueryHandler) Handle(
	ctx context.Context,
	query GetOrderGroupsForOrganizationQuery,
) ([]GetOrderGroupsForOrganizationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var businessType string
	err := h.db.WithContext(ctx).Raw(`
		SELECT business_type FROM memberships
		WHERE actor_id = ? AND organization_id = ?
	`, query.ActorID().String(), query.ActingOrgID().String()).Scan(&businessType).Error
	if err != nil {
		return nil, err
	}
	if businessType != actor.BusinessTypeShippingAgency.String() {
		return []GetOrderGroupsForOrganizationQueryResponse{}, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			g.id,
			g.order_id,
			g.status,
			g.subtotal_cents,
			COUNT(s.id)
		FROM order_groups g
		LEFT JOIN order_group_services s ON s.order_group_id = g.id
		WHERE g.fulfilling_org_id = ?
		GROUP BY g.id, g.order_id, g.status, g.subtotal_cents
		ORDER BY g.id
	`, query.ActingOrgID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]GetOrderGroupsForOrganizationQueryResponse, 0)

	for rows.Next() {
		var (
			id, orderID  uuid.UUID
			status       string
			subtotal     int64
			serviceCount int
		)

		if err = rows.Scan(&id, &orderID, &status, &subtotal, &serviceCount); err != nil {
			return nil, err
		}

		groupID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		parentID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		parsed, stErr := order.StatusFromString(status)
		if stErr != nil {
			return nil, stErr
		}

		groups = append(groups, GetOrderGroupsForOrganizationQueryResponse{
			ID:            groupID,
			OrderID:       parentID,
			Status:        parsed,
			SubtotalCents: subtotal,
			ServiceCount:  serviceCount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
