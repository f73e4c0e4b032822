package order

import (
	"errors"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

var (
	// ErrOrderGroupServiceIsNotConstructed is returned when using an improperly
	// initialized OrderGroupService.
	ErrOrderGroupServiceIsNotConstructed = errors.New(
		"OrderGroupService must be created via NewOrderGroupService constructor")

	// ErrPriceSnapshotIsInvalid is returned when attempting to create a line
	// item with a negative price snapshot.
	ErrPriceSnapshotIsInvalid = errs.NewValueIsInvalidError("price snapshot must not be negative")
)

// OrderGroupService is one priced service line item within an OrderGroup.
//
// The price snapshot is the contractual price for this order: it is captured
// from the service catalog at selection time and never changes afterwards,
// even if the catalog price does. Line item status is tracked independently
// of the parent group's status, which allows partial fulfillment granularity;
// neither cascades into the other.
type OrderGroupService struct {
	// id uniquely identifies the line item
	id kernel.UUID

	// serviceID references the catalog service this line item was created from
	serviceID kernel.UUID

	// status is the line item's own fulfillment state
	status Status

	// priceSnapshotCents is the price in minor currency units captured at
	// selection time, immutable thereafter
	priceSnapshotCents int64

	// notes holds free-form remarks from the fulfilling agency
	notes string

	guard guard.ConstructorGuard
}

// NewOrderGroupService creates a line item in Pending status with the given
// price snapshot. The snapshot must be zero or positive.
func NewOrderGroupService(id, serviceID kernel.UUID, priceSnapshotCents int64) (*OrderGroupService, error) {
	s := &OrderGroupService{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setServiceID(serviceID),
		s.setPriceSnapshot(priceSnapshotCents),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreOrderGroupService reconstructs a line item from persistent storage,
// preserving its status, price snapshot, and notes.
func RestoreOrderGroupService(
	id, serviceID kernel.UUID,
	status Status,
	priceSnapshotCents int64,
	notes string,
) (*OrderGroupService, error) {
	s := &OrderGroupService{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setServiceID(serviceID),
		status.Validate(),
		s.setPriceSnapshot(priceSnapshotCents),
	); err != nil {
		return nil, err
	}

	s.status = status
	s.notes = notes
	return s, nil
}

// Validate ensures the line item was created through a constructor.
func (s *OrderGroupService) Validate() error {
	if s == nil {
		return ErrOrderGroupServiceIsNotConstructed
	}
	return s.guard.Validate(ErrOrderGroupServiceIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (s *OrderGroupService) ID() kernel.UUID {
	return s.id
}

// ServiceID returns the catalog service this line item references.
func (s *OrderGroupService) ServiceID() kernel.UUID {
	return s.serviceID
}

// Status returns the line item's current fulfillment status.
func (s *OrderGroupService) Status() Status {
	return s.status
}

// PriceSnapshot returns the contractual price in minor currency units.
// It never changes after construction.
func (s *OrderGroupService) PriceSnapshot() int64 {
	return s.priceSnapshotCents
}

// Notes returns the fulfilling agency's remarks for this line item.
func (s *OrderGroupService) Notes() string {
	return s.notes
}

// SetNotes replaces the line item's notes.
func (s *OrderGroupService) SetNotes(notes string) {
	s.notes = notes
}

// Transition moves the line item to the target status.
// Fails with InvalidTransitionError when the move is not legal from the
// current status; the stored status is left unchanged on failure.
func (s *OrderGroupService) Transition(target Status) error {
	newStatus, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *OrderGroupService) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *OrderGroupService) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.serviceID = id
	return nil
}

func (s *OrderGroupService) setPriceSnapshot(cents int64) error {
	if cents < 0 {
		return ErrPriceSnapshotIsInvalid
	}
	s.priceSnapshotCents = cents
	return nil
}
