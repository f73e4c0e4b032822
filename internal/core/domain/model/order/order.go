package order

import (
	"errors"
	"fmt"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// OrderStatus is the derived state of an Order, rolled up from the statuses of
// its child OrderGroups. It is never set directly by a transition request.
type OrderStatus int

const (
	// OrderStatusUnknown represents an invalid or undefined order status.
	OrderStatusUnknown OrderStatus = iota

	// OrderStatusPending means no group has moved the order forward yet.
	OrderStatusPending

	// OrderStatusAccepted means every remaining group has been accepted but
	// fulfillment has not started.
	OrderStatusAccepted

	// OrderStatusInProgress means at least one group is being fulfilled.
	OrderStatusInProgress

	// OrderStatusCompleted means all groups reached a terminal status and at
	// least one completed.
	OrderStatusCompleted

	// OrderStatusCancelled means every group was rejected.
	OrderStatusCancelled
)

func getOrderStatusStrings() map[OrderStatus]string {
	return map[OrderStatus]string{
		OrderStatusUnknown:    "unknown",
		OrderStatusPending:    "pending",
		OrderStatusAccepted:   "accepted",
		OrderStatusInProgress: "in_progress",
		OrderStatusCompleted:  "completed",
		OrderStatusCancelled:  "cancelled",
	}
}

// String returns the snake_case name of the order status.
func (s OrderStatus) String() string {
	if str, ok := getOrderStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the OrderStatus value is valid.
func (s OrderStatus) Validate() error {
	if _, ok := getOrderStatusStrings()[s]; !ok || s == OrderStatusUnknown {
		return fmt.Errorf("%d is not a valid order status", s)
	}
	return nil
}

// OrderStatusFromString parses an order status from its persisted string form.
func OrderStatusFromString(v string) (OrderStatus, error) {
	for s, str := range getOrderStatusStrings() {
		if str == v && s != OrderStatusUnknown {
			return s, nil
		}
	}
	return OrderStatusUnknown, fmt.Errorf("%q is not a valid order status", v)
}

// RollupStatus derives the Order status from its child group statuses.
//
// The rule is monotonic in the fulfillment direction: as groups move forward
// through their own machine the order never moves backward. Precedence:
//
//  1. no groups                                      -> pending
//  2. every group rejected                           -> cancelled
//  3. every group terminal and at least one completed -> completed
//  4. any group in progress, or any completed among
//     non-terminal remainder                          -> in_progress
//  5. every non-rejected group accepted              -> accepted
//  6. otherwise                                      -> pending
func RollupStatus(groups []Status) OrderStatus {
	if len(groups) == 0 {
		return OrderStatusPending
	}

	var rejected, completed, inProgress, accepted, pending int
	for _, s := range groups {
		switch s {
		case StatusRejected:
			rejected++
		case StatusCompleted:
			completed++
		case StatusInProgress:
			inProgress++
		case StatusAccepted:
			accepted++
		default:
			pending++
		}
	}

	switch {
	case rejected == len(groups):
		return OrderStatusCancelled
	case rejected+completed == len(groups) && completed > 0:
		return OrderStatusCompleted
	case inProgress > 0 || completed > 0:
		return OrderStatusInProgress
	case pending == 0 && accepted > 0:
		return OrderStatusAccepted
	default:
		return OrderStatusPending
	}
}

// Order represents a vessel owner's request for port services at a given
// vessel/port pair. It is the aggregate root of the fulfillment workflow:
// the order fans out into OrderGroups, one per fulfilling agency, and its
// status and total are rollups over those groups.
//
// Order follows these invariants:
//   - Must have valid identifiers for order, placing organization, placing
//     actor, vessel, and port
//   - Status is derived via RollupStatus, never set directly
//   - Total price is the sum of the groups' subtotals
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// placedByOrgID is the vessel-owner organization that placed the order
	placedByOrgID kernel.UUID

	// placedByActorID is the actor who submitted the order
	placedByActorID kernel.UUID

	// vesselID references the vessel the services are for
	vesselID kernel.UUID

	// portID references the port of call
	portID kernel.UUID

	// status is the rollup of the child groups' statuses
	status OrderStatus

	// totalPriceCents is the sum of the groups' subtotals in minor units
	totalPriceCents int64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an Order in Pending status with a zero total.
func NewOrder(id, placedByOrgID, placedByActorID, vesselID, portID kernel.UUID) (*Order, error) {
	o := &Order{
		status:        OrderStatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPlacedByOrgID(placedByOrgID),
		o.setPlacedByActorID(placedByActorID),
		o.setVesselID(vesselID),
		o.setPortID(portID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
func RestoreOrder(
	id, placedByOrgID, placedByActorID, vesselID, portID kernel.UUID,
	status OrderStatus,
	totalPriceCents int64,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPlacedByOrgID(placedByOrgID),
		o.setPlacedByActorID(placedByActorID),
		o.setVesselID(vesselID),
		o.setPortID(portID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.totalPriceCents = totalPriceCents
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PlacedByOrgID returns the vessel-owner organization that placed the order.
func (o *Order) PlacedByOrgID() kernel.UUID {
	return o.placedByOrgID
}

// PlacedByActorID returns the actor who submitted the order.
func (o *Order) PlacedByActorID() kernel.UUID {
	return o.placedByActorID
}

// VesselID returns the vessel the services are for.
func (o *Order) VesselID() kernel.UUID {
	return o.vesselID
}

// PortID returns the port of call.
func (o *Order) PortID() kernel.UUID {
	return o.portID
}

// Status returns the order's rolled-up status.
func (o *Order) Status() OrderStatus {
	return o.status
}

// TotalPrice returns the order total in minor currency units.
func (o *Order) TotalPrice() int64 {
	return o.totalPriceCents
}

// Reconcile recomputes the order's status and total from its child groups.
// Called after any group transition or line item mutation commits, and by the
// periodic rollup job.
func (o *Order) Reconcile(groups []*OrderGroup) error {
	statuses := make([]Status, 0, len(groups))
	var total int64
	for _, g := range groups {
		if err := g.Validate(); err != nil {
			return err
		}
		statuses = append(statuses, g.Status())
		total += g.Subtotal()
	}

	o.status = RollupStatus(statuses)
	o.totalPriceCents = total
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPlacedByOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.placedByOrgID = id
	return nil
}

func (o *Order) setPlacedByActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.placedByActorID = id
	return nil
}

func (o *Order) setVesselID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.vesselID = id
	return nil
}

func (o *Order) setPortID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.portID = id
	return nil
}
