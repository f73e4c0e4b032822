package commands

import (
	"errors"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

var ErrUpdateOrderGroupServiceCommandIsNotConstructed = errors.New(
	"UpdateOrderGroupServiceCommand must be created via NewUpdateOrderGroupServiceCommand constructor",
)

// UpdateOrderGroupServiceCommand moves one service line item to a new status.
// Lines transition independently of their group, which is what makes partial
// fulfillment visible per service.
type UpdateOrderGroupServiceCommand struct { //nolint:recvcheck //using for validation
	groupID     kernel.UUID
	lineID      kernel.UUID
	actorID     kernel.UUID
	actingOrgID kernel.UUID
	target      order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderGroupServiceCommand creates a command to transition a service
// line item.
func NewUpdateOrderGroupServiceCommand(
	groupID, lineID, actorID, actingOrgID kernel.UUID,
	target order.Status,
) (UpdateOrderGroupServiceCommand, error) {
	cmd := UpdateOrderGroupServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setGroupID(groupID),
		cmd.setLineID(lineID),
		cmd.setActorID(actorID),
		cmd.setActingOrgID(actingOrgID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateOrderGroupServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderGroupServiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderGroupServiceCommandIsNotConstructed)
}

// GroupID returns the order group holding the line.
func (c UpdateOrderGroupServiceCommand) GroupID() kernel.UUID { return c.groupID }

// LineID returns the service line item to transition.
func (c UpdateOrderGroupServiceCommand) LineID() kernel.UUID { return c.lineID }

// ActorID returns the acting user.
func (c UpdateOrderGroupServiceCommand) ActorID() kernel.UUID { return c.actorID }

// ActingOrgID returns the organization the actor is acting for.
func (c UpdateOrderGroupServiceCommand) ActingOrgID() kernel.UUID { return c.actingOrgID }

// Target returns the requested status.
func (c UpdateOrderGroupServiceCommand) Target() order.Status { return c.target }

func (c *UpdateOrderGroupServiceCommand) setGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.groupID = id
	return nil
}

func (c *UpdateOrderGroupServiceCommand) setLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.lineID = id
	return nil
}

func (c *UpdateOrderGroupServiceCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *UpdateOrderGroupServiceCommand) setActingOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actingOrgID = id
	return nil
}

func (c *UpdateOrderGroupServiceCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
