package commands

import (
	"errors"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

var ErrJoinRequestCommandIsNotConstructed = errors.New(
	"join request command must be created via its constructor",
)

// joinRequestCommand carries the triple shared by every join request
// operation: the request, the acting user, and the organization context the
// review happens in.
type joinRequestCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	actorID     kernel.UUID
	actingOrgID kernel.UUID

	guard guard.ConstructorGuard
}

func newJoinRequestCommand(requestID, actorID, actingOrgID kernel.UUID) (joinRequestCommand, error) {
	cmd := joinRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setActorID(actorID),
		cmd.setActingOrgID(actingOrgID),
	); err != nil {
		return joinRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c joinRequestCommand) Validate() error {
	return c.guard.Validate(ErrJoinRequestCommandIsNotConstructed)
}

// RequestID returns the join request being acted on.
func (c joinRequestCommand) RequestID() kernel.UUID { return c.requestID }

// ActorID returns the acting user.
func (c joinRequestCommand) ActorID() kernel.UUID { return c.actorID }

// ActingOrgID returns the organization the actor is acting for.
func (c joinRequestCommand) ActingOrgID() kernel.UUID { return c.actingOrgID }

func (c *joinRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *joinRequestCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *joinRequestCommand) setActingOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actingOrgID = id
	return nil
}

// ApproveJoinRequestCommand resolves a pending join request in the
// requester's favor.
type ApproveJoinRequestCommand struct{ joinRequestCommand }

// NewApproveJoinRequestCommand creates a command to approve a join request.
func NewApproveJoinRequestCommand(requestID, actorID, actingOrgID kernel.UUID) (ApproveJoinRequestCommand, error) {
	base, err := newJoinRequestCommand(requestID, actorID, actingOrgID)
	if err != nil {
		return ApproveJoinRequestCommand{}, err
	}
	return ApproveJoinRequestCommand{base}, nil
}

// RejectJoinRequestCommand declines a pending join request.
type RejectJoinRequestCommand struct{ joinRequestCommand }

// NewRejectJoinRequestCommand creates a command to reject a join request.
func NewRejectJoinRequestCommand(requestID, actorID, actingOrgID kernel.UUID) (RejectJoinRequestCommand, error) {
	base, err := newJoinRequestCommand(requestID, actorID, actingOrgID)
	if err != nil {
		return RejectJoinRequestCommand{}, err
	}
	return RejectJoinRequestCommand{base}, nil
}

// WithdrawJoinRequestCommand cancels the actor's own pending join request.
// No organization context is needed; the rule is requester-only.
type WithdrawJoinRequestCommand struct{ //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewWithdrawJoinRequestCommand creates a command to withdraw a join request.
func NewWithdrawJoinRequestCommand(requestID, actorID kernel.UUID) (WithdrawJoinRequestCommand, error) {
	cmd := WithdrawJoinRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(requestID.Validate(), actorID.Validate()); err != nil {
		return WithdrawJoinRequestCommand{}, err
	}

	cmd.requestID = requestID
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawJoinRequestCommand) Validate() error {
	return c.guard.Validate(ErrJoinRequestCommandIsNotConstructed)
}

// RequestID returns the join request being withdrawn.
func (c WithdrawJoinRequestCommand) RequestID() kernel.UUID { return c.requestID }

// ActorID returns the requester.
func (c WithdrawJoinRequestCommand) ActorID() kernel.UUID { return c.actorID }
