package commands

import (
	"errors"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrGroupsAreRequired        = errors.New("at least one order group is required")
	ErrGroupServicesAreRequired = errors.New("every order group needs at least one service")
)

// OrderGroupSpec names one fulfilling agency and the catalog services
// requested from it.
type OrderGroupSpec struct {
	GroupID         kernel.UUID
	FulfillingOrgID kernel.UUID
	ServiceIDs      []kernel.UUID
}

func (s OrderGroupSpec) validate() error {
	if err := errors.Join(s.GroupID.Validate(), s.FulfillingOrgID.Validate()); err != nil {
		return err
	}
	if len(s.ServiceIDs) == 0 {
		return ErrGroupServicesAreRequired
	}
	for _, id := range s.ServiceIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PlaceOrderCommand represents a vessel owner's request for port services,
// fanned out across one or more fulfilling agencies.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actorID         kernel.UUID
	actingOrgID     kernel.UUID
	vesselID        kernel.UUID
	portID          kernel.UUID
	groups          []OrderGroupSpec
	wizardSessionID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. wizardSessionID
// may be nil when the order was not drafted through the wizard.
func NewPlaceOrderCommand(
	orderID, actorID, actingOrgID, vesselID, portID kernel.UUID,
	groups []OrderGroupSpec,
	wizardSessionID *kernel.UUID,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setActingOrgID(actingOrgID),
		cmd.setVesselID(vesselID),
		cmd.setPortID(portID),
		cmd.setGroups(groups),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.wizardSessionID = wizardSessionID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c PlaceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the submitting actor.
func (c PlaceOrderCommand) ActorID() kernel.UUID { return c.actorID }

// ActingOrgID returns the organization the actor is acting for.
func (c PlaceOrderCommand) ActingOrgID() kernel.UUID { return c.actingOrgID }

// VesselID returns the vessel the services are for.
func (c PlaceOrderCommand) VesselID() kernel.UUID { return c.vesselID }

// PortID returns the port of call.
func (c PlaceOrderCommand) PortID() kernel.UUID { return c.portID }

// Groups returns the per-agency fan-out specs.
func (c PlaceOrderCommand) Groups() []OrderGroupSpec { return c.groups }

// WizardSessionID returns the draft session consumed by this order, nil when
// the order was placed directly.
func (c PlaceOrderCommand) WizardSessionID() *kernel.UUID { return c.wizardSessionID }

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *PlaceOrderCommand) setActingOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actingOrgID = id
	return nil
}

func (c *PlaceOrderCommand) setVesselID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vesselID = id
	return nil
}

func (c *PlaceOrderCommand) setPortID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.portID = id
	return nil
}

func (c *PlaceOrderCommand) setGroups(groups []OrderGroupSpec) error {
	if len(groups) == 0 {
		return ErrGroupsAreRequired
	}
	for _, g := range groups {
		if err := g.validate(); err != nil {
			return err
		}
	}
	c.groups = groups
	return nil
}
