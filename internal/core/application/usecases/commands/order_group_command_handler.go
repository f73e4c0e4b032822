package commands

import (
	"context"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/chat"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/services"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/ports"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// groupTransitioner is the shared machinery behind the group lifecycle
// handlers. Every transition follows the same shape: authorize against the
// fulfilling organization, apply the domain transition, persist under a
// compare-and-swap guard, reconcile the parent order's rollup, and publish
// the committed changes.
type groupTransitioner struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderStatusPublisher
	policy     services.OrderGroupPolicy
}

func newGroupTransitioner(uowFactory OrderUoWFactory, publisher ports.OrderStatusPublisher) groupTransitioner {
	return groupTransitioner{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewOrderGroupPolicy(),
	}
}

// afterWriteFunc runs inside the transaction after the group and rollup
// writes, for transition-specific side effects.
type afterWriteFunc func(ctx context.Context, uow OrderUoW, group *order.OrderGroup, parent *order.Order) error

func (t *groupTransitioner) transition(
	ctx context.Context,
	cmd orderGroupCommand,
	action string,
	mutate func(*order.OrderGroup) error,
	afterWrite afterWriteFunc,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	act, err := uow.ActorRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	orders := uow.OrderRepository()
	group, err := orders.GetGroup(ctx, cmd.GroupID())
	if err != nil {
		return err
	}
	if !t.policy.Update(act, cmd.ActingOrgID(), group) {
		return errs.NewPermissionDeniedError(
			cmd.ActorID().String(), action, "order_group", cmd.GroupID().String())
	}

	expected := group.Status()
	if err = mutate(group); err != nil {
		return err
	}
	if err = orders.UpdateGroupStatus(ctx, group, expected); err != nil {
		return err
	}

	parent, prevOrderStatus, err := reconcileOrder(ctx, orders, group.OrderID())
	if err != nil {
		return err
	}

	if afterWrite != nil {
		if err = afterWrite(ctx, uow, group, parent); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	t.publish(ctx, cmd, group, parent, prevOrderStatus)
	return nil
}

func (t *groupTransitioner) publish(
	ctx context.Context,
	cmd orderGroupCommand,
	group *order.OrderGroup,
	parent *order.Order,
	prevOrderStatus order.OrderStatus,
) {
	groupID := group.ID()
	now := time.Now()

	t.publisher.Publish(ctx, ports.OrderStatusChanged{
		OrderID:      parent.ID(),
		OrderGroupID: &groupID,
		EntityKind:   "order_group",
		NewStatus:    group.Status().String(),
		ActorID:      cmd.ActorID(),
		OccurredAt:   now,
	})
	if parent.Status() != prevOrderStatus {
		t.publisher.Publish(ctx, ports.OrderStatusChanged{
			OrderID:    parent.ID(),
			EntityKind: "order",
			NewStatus:  parent.Status().String(),
			ActorID:    cmd.ActorID(),
			OccurredAt: now,
		})
	}
}

// reconcileOrder reloads the order's groups and persists the recomputed
// status and total. It returns the order and its status before the rollup.
func reconcileOrder(
	ctx context.Context,
	orders ports.OrderRepository,
	orderID kernel.UUID,
) (*order.Order, order.OrderStatus, error) {
	parent, err := orders.Get(ctx, orderID)
	if err != nil {
		return nil, order.OrderStatusUnknown, err
	}
	prev := parent.Status()

	groups, err := orders.GetGroupsForOrder(ctx, orderID)
	if err != nil {
		return nil, order.OrderStatusUnknown, err
	}
	if err = parent.Reconcile(groups); err != nil {
		return nil, order.OrderStatusUnknown, err
	}
	if err = orders.Update(ctx, parent); err != nil {
		return nil, order.OrderStatusUnknown, err
	}
	return parent, prev, nil
}

// AcceptOrderGroupCommandHandler accepts a pending group on behalf of its
// fulfilling agency. Acceptance records who took the work and when, and opens
// the group's chat thread between the accepting actor and the actor who
// placed the order.
type AcceptOrderGroupCommandHandler struct {
	groupTransitioner
}

// NewAcceptOrderGroupCommandHandler creates a handler for group acceptance.
func NewAcceptOrderGroupCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderStatusPublisher,
) AcceptOrderGroupCommandHandler {
	return AcceptOrderGroupCommandHandler{newGroupTransitioner(uowFactory, publisher)}
}

// Handle processes the acceptance command.
func (h *AcceptOrderGroupCommandHandler) Handle(ctx context.Context, cmd AcceptOrderGroupCommand) error {
	return h.transition(ctx, cmd.orderGroupCommand, "accept",
		func(g *order.OrderGroup) error {
			return g.Accept(cmd.ActorID(), time.Now())
		},
		func(ctx context.Context, uow OrderUoW, group *order.OrderGroup, parent *order.Order) error {
			return openConversation(ctx, uow, group, parent, cmd.ActorID())
		})
}

// openConversation creates the group's chat thread with the accepting actor
// and the order's placing actor on the roster.
func openConversation(
	ctx context.Context,
	uow OrderUoW,
	group *order.OrderGroup,
	parent *order.Order,
	acceptedBy kernel.UUID,
) error {
	conv, err := chat.NewConversation(kernel.NewUUID(), group.ID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = conv.AddParticipant(acceptedBy, now); err != nil {
		return err
	}
	if !parent.PlacedByActorID().IsEqual(acceptedBy) {
		if err = conv.AddParticipant(parent.PlacedByActorID(), now); err != nil {
			return err
		}
	}
	return uow.ConversationRepository().Add(ctx, conv)
}

// RejectOrderGroupCommandHandler declines a pending group on behalf of its
// fulfilling agency.
type RejectOrderGroupCommandHandler struct {
	groupTransitioner
}

// NewRejectOrderGroupCommandHandler creates a handler for group rejection.
func NewRejectOrderGroupCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderStatusPublisher,
) RejectOrderGroupCommandHandler {
	return RejectOrderGroupCommandHandler{newGroupTransitioner(uowFactory, publisher)}
}

// Handle processes the rejection command.
func (h *RejectOrderGroupCommandHandler) Handle(ctx context.Context, cmd RejectOrderGroupCommand) error {
	return h.transition(ctx, cmd.orderGroupCommand, "reject",
		func(g *order.OrderGroup) error {
			return g.Reject(time.Now())
		}, nil)
}

// StartOrderGroupCommandHandler moves an accepted group into progress.
type StartOrderGroupCommandHandler struct {
	groupTransitioner
}

// NewStartOrderGroupCommandHandler creates a handler for starting group work.
func NewStartOrderGroupCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderStatusPublisher,
) StartOrderGroupCommandHandler {
	return StartOrderGroupCommandHandler{newGroupTransitioner(uowFactory, publisher)}
}

// Handle processes the start command.
func (h *StartOrderGroupCommandHandler) Handle(ctx context.Context, cmd StartOrderGroupCommand) error {
	return h.transition(ctx, cmd.orderGroupCommand, "start",
		func(g *order.OrderGroup) error {
			return g.Start()
		}, nil)
}

// CompleteOrderGroupCommandHandler closes out a group in progress.
type CompleteOrderGroupCommandHandler struct {
	groupTransitioner
}

// NewCompleteOrderGroupCommandHandler creates a handler for group completion.
func NewCompleteOrderGroupCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderStatusPublisher,
) CompleteOrderGroupCommandHandler {
	return CompleteOrderGroupCommandHandler{newGroupTransitioner(uowFactory, publisher)}
}

// Handle processes the completion command.
func (h *CompleteOrderGroupCommandHandler) Handle(ctx context.Context, cmd CompleteOrderGroupCommand) error {
	return h.transition(ctx, cmd.orderGroupCommand, "complete",
		func(g *order.OrderGroup) error {
			return g.Complete()
		}, nil)
}

// DeleteOrderGroupCommandHandler removes a still-pending group on behalf of
// the placing vessel owner, then reconciles the parent order.
type DeleteOrderGroupCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderStatusPublisher
	policy     services.OrderGroupPolicy
}

// NewDeleteOrderGroupCommandHandler creates a handler for group deletion.
func NewDeleteOrderGroupCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderStatusPublisher,
) DeleteOrderGroupCommandHandler {
	return DeleteOrderGroupCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewOrderGroupPolicy(),
	}
}

// Handle processes the deletion command.
func (h *DeleteOrderGroupCommandHandler) Handle(ctx context.Context, cmd DeleteOrderGroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	act, err := uow.ActorRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	orders := uow.OrderRepository()
	group, err := orders.GetGroup(ctx, cmd.GroupID())
	if err != nil {
		return err
	}
	parent, err := orders.Get(ctx, group.OrderID())
	if err != nil {
		return err
	}
	if !h.policy.Delete(act, cmd.ActingOrgID(), group, parent) {
		return errs.NewPermissionDeniedError(
			cmd.ActorID().String(), "delete", "order_group", cmd.GroupID().String())
	}

	if err = orders.DeleteGroup(ctx, group.ID()); err != nil {
		return err
	}

	parent, prevStatus, err := reconcileOrder(ctx, orders, parent.ID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if parent.Status() != prevStatus {
		h.publisher.Publish(ctx, ports.OrderStatusChanged{
			OrderID:    parent.ID(),
			EntityKind: "order",
			NewStatus:  parent.Status().String(),
			ActorID:    cmd.ActorID(),
			OccurredAt: time.Now(),
		})
	}
	return nil
}
