// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders, their order groups, and the groups' service
// lines form one consistency boundary and are persisted across three tables.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their snake_case names so the read-side queries and
// the compare-and-swap guards can match on them directly.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	PlacedByOrgID   uuid.UUID `gorm:"type:uuid;index;column:placed_by_org_id"`
	PlacedByActorID uuid.UUID `gorm:"type:uuid;column:placed_by_actor_id"`
	VesselID        uuid.UUID `gorm:"type:uuid;column:vessel_id"`
	PortID          uuid.UUID `gorm:"type:uuid;column:port_id"`
	Status          string    `gorm:"index;column:status"`
	TotalPriceCents int64     `gorm:"column:total_price_cents"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderGroupDTO represents one fulfilling organization's slice of an order,
// including the acceptance and rejection bookkeeping.
type OrderGroupDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;column:id"`
	OrderID         uuid.UUID  `gorm:"type:uuid;index;column:order_id"`
	FulfillingOrgID uuid.UUID  `gorm:"type:uuid;index;column:fulfilling_org_id"`
	Status          string     `gorm:"index;column:status"`
	SubtotalCents   int64      `gorm:"column:subtotal_cents"`
	AcceptedAt      *time.Time `gorm:"column:accepted_at"`
	AcceptedBy      *uuid.UUID `gorm:"type:uuid;column:accepted_by"`
	RejectedAt      *time.Time `gorm:"column:rejected_at"`
	Notes           string     `gorm:"column:notes"`
}

// TableName specifies the database table name for order group entities.
func (OrderGroupDTO) TableName() string {
	return "order_groups"
}

// OrderGroupServiceDTO represents one contracted service line inside a group.
// The price snapshot is the contractual price taken at placement; catalog
// price changes never touch this column.
type OrderGroupServiceDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	OrderGroupID       uuid.UUID `gorm:"type:uuid;index;column:order_group_id"`
	ServiceID          uuid.UUID `gorm:"type:uuid;column:service_id"`
	Status             string    `gorm:"column:status"`
	PriceSnapshotCents int64     `gorm:"column:price_snapshot_cents"`
	Notes              string    `gorm:"column:notes"`
}

// TableName specifies the database table name for service line entities.
func (OrderGroupServiceDTO) TableName() string {
	return "order_group_services"
}

func orderFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID().Bytes(),
		PlacedByOrgID:   o.PlacedByOrgID().Bytes(),
		PlacedByActorID: o.PlacedByActorID().Bytes(),
		VesselID:        o.VesselID().Bytes(),
		PortID:          o.PortID().Bytes(),
		Status:          o.Status().String(),
		TotalPriceCents: o.TotalPrice(),
	}
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	placedByOrg, err := kernel.UUIDFromBytes(dto.PlacedByOrgID[:])
	if err != nil {
		return nil, err
	}
	placedByActor, err := kernel.UUIDFromBytes(dto.PlacedByActorID[:])
	if err != nil {
		return nil, err
	}
	vesselID, err := kernel.UUIDFromBytes(dto.VesselID[:])
	if err != nil {
		return nil, err
	}
	portID, err := kernel.UUIDFromBytes(dto.PortID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.OrderStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, placedByOrg, placedByActor, vesselID, portID, status, dto.TotalPriceCents)
}

func groupFromDomain(g *order.OrderGroup) OrderGroupDTO {
	var acceptedBy *uuid.UUID
	if id := g.AcceptedBy(); id != nil {
		raw := id.Bytes()
		acceptedBy = &raw
	}

	return OrderGroupDTO{
		ID:              g.ID().Bytes(),
		OrderID:         g.OrderID().Bytes(),
		FulfillingOrgID: g.FulfillingOrgID().Bytes(),
		Status:          g.Status().String(),
		SubtotalCents:   g.Subtotal(),
		AcceptedAt:      g.AcceptedAt(),
		AcceptedBy:      acceptedBy,
		RejectedAt:      g.RejectedAt(),
		Notes:           g.Notes(),
	}
}

func groupToDomain(dto OrderGroupDTO, lineDTOs []OrderGroupServiceDTO) (*order.OrderGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	fulfillingOrgID, err := kernel.UUIDFromBytes(dto.FulfillingOrgID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var acceptedBy *kernel.UUID
	if dto.AcceptedBy != nil {
		abID, abErr := kernel.UUIDFromBytes((*dto.AcceptedBy)[:])
		if abErr != nil {
			return nil, abErr
		}
		acceptedBy = &abID
	}

	lines := make([]*order.OrderGroupService, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrderGroup(
		id, orderID, fulfillingOrgID, status, lines,
		dto.AcceptedAt, acceptedBy, dto.RejectedAt, dto.Notes)
}

func lineFromDomain(groupID kernel.UUID, s *order.OrderGroupService) OrderGroupServiceDTO {
	return OrderGroupServiceDTO{
		ID:                 s.ID().Bytes(),
		OrderGroupID:       groupID.Bytes(),
		ServiceID:          s.ServiceID().Bytes(),
		Status:             s.Status().String(),
		PriceSnapshotCents: s.PriceSnapshot(),
		Notes:              s.Notes(),
	}
}

func lineToDomain(dto OrderGroupServiceDTO) (*order.OrderGroupService, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderGroupService(id, serviceID, status, dto.PriceSnapshotCents, dto.Notes)
}
