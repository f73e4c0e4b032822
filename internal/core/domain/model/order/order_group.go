package order

import (
	"errors"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

var (
	// ErrOrderGroupIsNotConstructed is returned when using an improperly
	// initialized OrderGroup.
	ErrOrderGroupIsNotConstructed = errors.New("OrderGroup must be created via NewOrderGroup constructor")

	// ErrServiceLineNotFound is returned when a requested line item does not
	// belong to the group.
	ErrServiceLineNotFound = errors.New("service line item not found in order group")

	// ErrServiceAlreadyInGroup is returned when adding a line item for a
	// catalog service the group already carries.
	ErrServiceAlreadyInGroup = errors.New("service already present in order group")
)

// OrderGroup is the unit of work assigned to exactly one fulfilling
// shipping-agency organization for one Order. It is an aggregate root owning
// its service line items.
//
// Invariants:
//   - Exactly one fulfilling organization per group
//   - Subtotal always equals the sum of the line items' price snapshots
//   - Status transitions follow the Pending/Accepted/Rejected/InProgress/
//     Completed machine; acceptance and rejection bookkeeping never coexist
//
// Accepting records acting actor and time and clears any rejection timestamp;
// rejecting records the rejection time and clears the acceptance fields.
type OrderGroup struct {
	// id uniquely identifies the group
	id kernel.UUID

	// orderID references the parent order
	orderID kernel.UUID

	// fulfillingOrgID is the shipping-agency organization assigned this group
	fulfillingOrgID kernel.UUID

	// status is the group's fulfillment state
	status Status

	// services are the priced line items belonging to this group
	services []*OrderGroupService

	// acceptedAt is set when the group is accepted, nil otherwise
	acceptedAt *time.Time

	// acceptedBy is the actor who accepted the group, nil otherwise
	acceptedBy *kernel.UUID

	// rejectedAt is set when the group is rejected, nil otherwise
	rejectedAt *time.Time

	// notes holds free-form remarks from the fulfilling agency
	notes string

	// isConstructed ensures the group was created via a constructor
	isConstructed bool
}

// NewOrderGroup creates a group in Pending status for the given parent order
// and fulfilling organization, owning the provided line items.
func NewOrderGroup(
	id, orderID, fulfillingOrgID kernel.UUID,
	services []*OrderGroupService,
) (*OrderGroup, error) {
	g := &OrderGroup{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		g.setID(id),
		g.setOrderID(orderID),
		g.setFulfillingOrgID(fulfillingOrgID),
		g.setServices(services),
	); err != nil {
		return nil, err
	}

	return g, nil
}

// RestoreOrderGroup reconstructs a group from persistent storage, preserving
// its status and acceptance/rejection bookkeeping.
func RestoreOrderGroup(
	id, orderID, fulfillingOrgID kernel.UUID,
	status Status,
	services []*OrderGroupService,
	acceptedAt *time.Time,
	acceptedBy *kernel.UUID,
	rejectedAt *time.Time,
	notes string,
) (*OrderGroup, error) {
	g := &OrderGroup{
		isConstructed: true,
	}

	if err := errors.Join(
		g.setID(id),
		g.setOrderID(orderID),
		g.setFulfillingOrgID(fulfillingOrgID),
		status.Validate(),
		g.setServices(services),
	); err != nil {
		return nil, err
	}

	if acceptedBy != nil {
		if err := acceptedBy.Validate(); err != nil {
			return nil, err
		}
	}

	g.status = status
	g.acceptedAt = acceptedAt
	g.acceptedBy = acceptedBy
	g.rejectedAt = rejectedAt
	g.notes = notes
	return g, nil
}

// Validate ensures the group was created through a constructor.
func (g *OrderGroup) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrOrderGroupIsNotConstructed
	}
	return nil
}

// IsEqual compares two groups by their unique identifiers.
func (g *OrderGroup) IsEqual(other *OrderGroup) bool {
	return other != nil && g.id.IsEqual(other.id)
}

// ID returns the group's unique identifier.
func (g *OrderGroup) ID() kernel.UUID {
	return g.id
}

// OrderID returns the parent order's identifier.
func (g *OrderGroup) OrderID() kernel.UUID {
	return g.orderID
}

// FulfillingOrgID returns the shipping-agency organization assigned this group.
func (g *OrderGroup) FulfillingOrgID() kernel.UUID {
	return g.fulfillingOrgID
}

// Status returns the group's current fulfillment status.
func (g *OrderGroup) Status() Status {
	return g.status
}

// Services returns the group's line items. The slice is a copy; the line
// items themselves are shared with the aggregate.
func (g *OrderGroup) Services() []*OrderGroupService {
	return append([]*OrderGroupService(nil), g.services...)
}

// AcceptedAt returns when the group was accepted, nil if it was not.
func (g *OrderGroup) AcceptedAt() *time.Time {
	return g.acceptedAt
}

// AcceptedBy returns the actor who accepted the group, nil if it was not.
func (g *OrderGroup) AcceptedBy() *kernel.UUID {
	return g.acceptedBy
}

// RejectedAt returns when the group was rejected, nil if it was not.
func (g *OrderGroup) RejectedAt() *time.Time {
	return g.rejectedAt
}

// Notes returns the fulfilling agency's remarks for this group.
func (g *OrderGroup) Notes() string {
	return g.notes
}

// SetNotes replaces the group's notes.
func (g *OrderGroup) SetNotes(notes string) {
	g.notes = notes
}

// Subtotal returns the sum of the line items' price snapshots in minor
// currency units. It is recomputed from the line items on every call, so it
// stays correct when items are added or removed.
func (g *OrderGroup) Subtotal() int64 {
	var total int64
	for _, s := range g.services {
		total += s.PriceSnapshot()
	}
	return total
}

// Accept transitions the group from Pending to Accepted.
//
// Side effects on success:
//   - acceptedAt is set to now
//   - acceptedBy is set to the acting actor
//   - rejectedAt is cleared
//
// Fails with InvalidTransitionError from any other status; the group is left
// unchanged on failure.
func (g *OrderGroup) Accept(actorID kernel.UUID, now time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	newStatus, err := g.status.Accept()
	if err != nil {
		return err
	}

	g.status = newStatus
	g.acceptedAt = &now
	g.acceptedBy = &actorID
	g.rejectedAt = nil
	return nil
}

// Reject transitions the group from Pending to Rejected.
//
// Side effects on success:
//   - rejectedAt is set to now
//   - acceptedAt and acceptedBy are cleared
//
// Fails with InvalidTransitionError from any other status; the group is left
// unchanged on failure.
func (g *OrderGroup) Reject(now time.Time) error {
	newStatus, err := g.status.Reject()
	if err != nil {
		return err
	}

	g.status = newStatus
	g.rejectedAt = &now
	g.acceptedAt = nil
	g.acceptedBy = nil
	return nil
}

// Start transitions the group from Accepted to InProgress.
// No bookkeeping fields beyond the status change.
func (g *OrderGroup) Start() error {
	newStatus, err := g.status.Start()
	if err != nil {
		return err
	}

	g.status = newStatus
	return nil
}

// Complete transitions the group from InProgress to Completed.
// No bookkeeping fields beyond the status change.
func (g *OrderGroup) Complete() error {
	newStatus, err := g.status.Complete()
	if err != nil {
		return err
	}

	g.status = newStatus
	return nil
}

// TransitionServiceStatus moves one line item to the target status.
// Line item statuses are independent of the group status; no cascade happens
// in either direction.
func (g *OrderGroup) TransitionServiceStatus(lineID kernel.UUID, target Status) error {
	for _, s := range g.services {
		if s.ID().IsEqual(lineID) {
			return s.Transition(target)
		}
	}
	return ErrServiceLineNotFound
}

// AddService appends a line item to the group. The subtotal reflects the new
// item immediately. Duplicate catalog services are rejected.
func (g *OrderGroup) AddService(s *OrderGroupService) error {
	if err := s.Validate(); err != nil {
		return err
	}

	for _, existing := range g.services {
		if existing.ServiceID().IsEqual(s.ServiceID()) {
			return ErrServiceAlreadyInGroup
		}
	}

	g.services = append(g.services, s)
	return nil
}

// RemoveService removes a line item by its identifier. The subtotal reflects
// the removal immediately.
func (g *OrderGroup) RemoveService(lineID kernel.UUID) error {
	for i, s := range g.services {
		if s.ID().IsEqual(lineID) {
			g.services = append(g.services[:i], g.services[i+1:]...)
			return nil
		}
	}
	return ErrServiceLineNotFound
}

func (g *OrderGroup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *OrderGroup) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.orderID = id
	return nil
}

func (g *OrderGroup) setFulfillingOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.fulfillingOrgID = id
	return nil
}

func (g *OrderGroup) setServices(services []*OrderGroupService) error {
	for _, s := range services {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	g.services = append([]*OrderGroupService(nil), services...)
	return nil
}
