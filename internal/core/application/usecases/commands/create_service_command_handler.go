package commands

import (
	"context"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/service"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/services"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// CreateServiceCommandHandler adds an offering to a shipping agency's
// catalog. New services start active.
type CreateServiceCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.ServicePolicy
}

// NewCreateServiceCommandHandler creates a handler for catalog additions.
func NewCreateServiceCommandHandler(uowFactory CatalogUoWFactory) CreateServiceCommandHandler {
	return CreateServiceCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewServicePolicy(),
	}
}

// Handle processes the catalog addition command.
func (h *CreateServiceCommandHandler) Handle(ctx context.Context, cmd CreateServiceCommand) error {
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
	if !h.policy.Create(act, cmd.ActingOrgID()) {
		return errs.NewPermissionDeniedError(
			cmd.ActorID().String(), "create", "service", "")
	}

	aggregate, err := service.NewService(
		cmd.ServiceID(), cmd.ActingOrgID(), cmd.Name(), cmd.PriceCents())
	if err != nil {
		return err
	}

	if err = uow.ServiceRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
