package commands

import (
	"context"
)

// ReconcileOrdersCommandHandler sweeps orders whose stored status or total
// disagrees with the rollup of their groups and rewrites them from the
// groups' current state. All repairs happen in a single transaction.
type ReconcileOrdersCommandHandler struct {
	uowFactory RollupUoWFactory
}

// NewReconcileOrdersCommandHandler creates a handler for the rollup sweep.
func NewReconcileOrdersCommandHandler(uowFactory RollupUoWFactory) ReconcileOrdersCommandHandler {
	return ReconcileOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rollup sweep command. Loads every diverged order,
// recomputes its status and total from its groups, and persists the result.
func (h *ReconcileOrdersCommandHandler) Handle(ctx context.Context, cmd ReconcileOrdersCommand) error {
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

	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetOrdersNeedingRollup(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		groups, groupsErr := ordersRepo.GetGroupsForOrder(ctx, aggregate.ID())
		if groupsErr != nil {
			return groupsErr
		}

		if err = aggregate.Reconcile(groups); err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
