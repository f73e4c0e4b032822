package commands

import (
	"context"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/services"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/ports"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// UpdateOrderGroupServiceCommandHandler transitions one service line item on
// behalf of the fulfilling agency. The group's own status is untouched;
// lines and groups advance independently.
type UpdateOrderGroupServiceCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderStatusPublisher
	policy     services.OrderGroupPolicy
}

// NewUpdateOrderGroupServiceCommandHandler creates a handler for service line
// transitions.
func NewUpdateOrderGroupServiceCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderStatusPublisher,
) UpdateOrderGroupServiceCommandHandler {
	return UpdateOrderGroupServiceCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewOrderGroupPolicy(),
	}
}

// Handle processes the line transition command.
func (h *UpdateOrderGroupServiceCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderGroupServiceCommand,
) error {
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
	if !h.policy.Update(act, cmd.ActingOrgID(), group) {
		return errs.NewPermissionDeniedError(
			cmd.ActorID().String(), "update", "order_group_service", cmd.LineID().String())
	}

	var line *order.OrderGroupService
	for _, s := range group.Services() {
		if s.ID().IsEqual(cmd.LineID()) {
			line = s
			break
		}
	}
	if line == nil {
		return errs.NewObjectNotFoundError("orderGroupServiceId", cmd.LineID().String())
	}

	expected := line.Status()
	if err = group.TransitionServiceStatus(cmd.LineID(), cmd.Target()); err != nil {
		return err
	}
	if err = orders.UpdateGroupServiceStatus(ctx, group.ID(), line, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	groupID := group.ID()
	h.publisher.Publish(ctx, ports.OrderStatusChanged{
		OrderID:      group.OrderID(),
		OrderGroupID: &groupID,
		EntityKind:   "order_group_service",
		NewStatus:    line.Status().String(),
		ActorID:      cmd.ActorID(),
		OccurredAt:   time.Now(),
	})
	return nil
}
