package commands

import (
	"context"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/services"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/ports"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles order placement. It snapshots the
// contractual price of every requested service at placement time, builds the
// per-agency order groups, derives the order's initial status and total, and
// consumes the wizard draft if one was used.
type PlaceOrderCommandHandler struct {
	uowFactory  PlaceOrderUoWFactory
	publisher   ports.OrderStatusPublisher
	orderPolicy services.OrderPolicy
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	publisher ports.OrderStatusPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		publisher:   publisher,
		orderPolicy: services.NewOrderPolicy(),
	}
}

// Handle processes the order placement command.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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
	if !h.orderPolicy.Create(act, cmd.ActingOrgID()) {
		return errs.NewPermissionDeniedError(
			cmd.ActorID().String(), "create", "order", "")
	}

	if _, err = uow.VesselRepository().Get(ctx, cmd.VesselID()); err != nil {
		return err
	}

	catalog, err := h.loadCatalog(ctx, uow.ServiceRepository(), cmd.Groups())
	if err != nil {
		return err
	}

	groups := make([]*order.OrderGroup, 0, len(cmd.Groups()))
	for _, spec := range cmd.Groups() {
		lines := make([]*order.OrderGroupService, 0, len(spec.ServiceIDs))
		for _, serviceID := range spec.ServiceIDs {
			entry := catalog[serviceID.String()]
			line, err := order.NewOrderGroupService(kernel.NewUUID(), serviceID, entry.price)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}

		group, err := order.NewOrderGroup(spec.GroupID, cmd.OrderID(), spec.FulfillingOrgID, lines)
		if err != nil {
			return err
		}
		groups = append(groups, group)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.ActingOrgID(), cmd.ActorID(), cmd.VesselID(), cmd.PortID())
	if err != nil {
		return err
	}
	if err = aggregate.Reconcile(groups); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate, groups); err != nil {
		return err
	}

	if cmd.WizardSessionID() != nil {
		if err = h.consumeWizardSession(ctx, uow, cmd); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.OrderStatusChanged{
		OrderID:    aggregate.ID(),
		EntityKind: "order",
		NewStatus:  aggregate.Status().String(),
		ActorID:    cmd.ActorID(),
		OccurredAt: time.Now(),
	})
	return nil
}

// loadCatalog fetches every requested service once and indexes it by id.
func (h *PlaceOrderCommandHandler) loadCatalog(
	ctx context.Context,
	repo ports.ServiceRepository,
	specs []OrderGroupSpec,
) (map[string]catalogEntry, error) {
	var ids []kernel.UUID
	seen := make(map[string]bool)
	for _, spec := range specs {
		for _, id := range spec.ServiceIDs {
			if !seen[id.String()] {
				seen[id.String()] = true
				ids = append(ids, id)
			}
		}
	}

	found, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]catalogEntry, len(found))
	for _, svc := range found {
		catalog[svc.ID().String()] = catalogEntry{price: svc.Price()}
	}
	for _, id := range ids {
		if _, ok := catalog[id.String()]; !ok {
			return nil, errs.NewObjectNotFoundError("serviceId", id.String())
		}
	}
	return catalog, nil
}

func (h *PlaceOrderCommandHandler) consumeWizardSession(
	ctx context.Context,
	uow PlaceOrderUoW,
	cmd PlaceOrderCommand,
) error {
	sessions := uow.WizardSessionRepository()
	session, err := sessions.Get(ctx, *cmd.WizardSessionID())
	if err != nil {
		return err
	}
	if !session.OwnedBy(cmd.ActorID()) || !session.OrgID().IsEqual(cmd.ActingOrgID()) {
		return errs.NewPermissionDeniedError(
			cmd.ActorID().String(), "update", "wizard_session", session.ID().String())
	}
	if err = session.Complete(time.Now()); err != nil {
		return err
	}
	return sessions.Update(ctx, session)
}

// catalogEntry carries the only catalog fact placement needs: the price to
// freeze into the line item.
type catalogEntry struct {
	price int64
}
