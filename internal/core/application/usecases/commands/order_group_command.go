package commands

import (
	"errors"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

var ErrOrderGroupCommandIsNotConstructed = errors.New(
	"order group command must be created via its constructor",
)

// orderGroupCommand carries the triple every group lifecycle command needs:
// the target group, the acting user, and the organization they act for.
type orderGroupCommand struct { //nolint:recvcheck //using for validation
	groupID     kernel.UUID
	actorID     kernel.UUID
	actingOrgID kernel.UUID

	guard guard.ConstructorGuard
}

func newOrderGroupCommand(groupID, actorID, actingOrgID kernel.UUID) (orderGroupCommand, error) {
	cmd := orderGroupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setGroupID(groupID),
		cmd.setActorID(actorID),
		cmd.setActingOrgID(actingOrgID),
	); err != nil {
		return orderGroupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c orderGroupCommand) Validate() error {
	return c.guard.Validate(ErrOrderGroupCommandIsNotConstructed)
}

// GroupID returns the target order group.
func (c orderGroupCommand) GroupID() kernel.UUID { return c.groupID }

// ActorID returns the acting user.
func (c orderGroupCommand) ActorID() kernel.UUID { return c.actorID }

// ActingOrgID returns the organization the actor is acting for.
func (c orderGroupCommand) ActingOrgID() kernel.UUID { return c.actingOrgID }

func (c *orderGroupCommand) setGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.groupID = id
	return nil
}

func (c *orderGroupCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *orderGroupCommand) setActingOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actingOrgID = id
	return nil
}

// AcceptOrderGroupCommand asks the fulfilling agency to take on a pending
// group.
type AcceptOrderGroupCommand struct{ orderGroupCommand }

// NewAcceptOrderGroupCommand creates a command to accept an order group.
func NewAcceptOrderGroupCommand(groupID, actorID, actingOrgID kernel.UUID) (AcceptOrderGroupCommand, error) {
	base, err := newOrderGroupCommand(groupID, actorID, actingOrgID)
	if err != nil {
		return AcceptOrderGroupCommand{}, err
	}
	return AcceptOrderGroupCommand{base}, nil
}

// RejectOrderGroupCommand asks the fulfilling agency to decline a pending
// group.
type RejectOrderGroupCommand struct{ orderGroupCommand }

// NewRejectOrderGroupCommand creates a command to reject an order group.
func NewRejectOrderGroupCommand(groupID, actorID, actingOrgID kernel.UUID) (RejectOrderGroupCommand, error) {
	base, err := newOrderGroupCommand(groupID, actorID, actingOrgID)
	if err != nil {
		return RejectOrderGroupCommand{}, err
	}
	return RejectOrderGroupCommand{base}, nil
}

// StartOrderGroupCommand moves an accepted group into progress.
type StartOrderGroupCommand struct{ orderGroupCommand }

// NewStartOrderGroupCommand creates a command to start an order group.
func NewStartOrderGroupCommand(groupID, actorID, actingOrgID kernel.UUID) (StartOrderGroupCommand, error) {
	base, err := newOrderGroupCommand(groupID, actorID, actingOrgID)
	if err != nil {
		return StartOrderGroupCommand{}, err
	}
	return StartOrderGroupCommand{base}, nil
}

// CompleteOrderGroupCommand closes out a group in progress.
type CompleteOrderGroupCommand struct{ orderGroupCommand }

// NewCompleteOrderGroupCommand creates a command to complete an order group.
func NewCompleteOrderGroupCommand(groupID, actorID, actingOrgID kernel.UUID) (CompleteOrderGroupCommand, error) {
	base, err := newOrderGroupCommand(groupID, actorID, actingOrgID)
	if err != nil {
		return CompleteOrderGroupCommand{}, err
	}
	return CompleteOrderGroupCommand{base}, nil
}

// DeleteOrderGroupCommand removes a still-pending group on behalf of the
// placing vessel owner.
type DeleteOrderGroupCommand struct{ orderGroupCommand }

// NewDeleteOrderGroupCommand creates a command to delete an order group.
func NewDeleteOrderGroupCommand(groupID, actorID, actingOrgID kernel.UUID) (DeleteOrderGroupCommand, error) {
	base, err := newOrderGroupCommand(groupID, actorID, actingOrgID)
	if err != nil {
		return DeleteOrderGroupCommand{}, err
	}
	return DeleteOrderGroupCommand{base}, nil
}
