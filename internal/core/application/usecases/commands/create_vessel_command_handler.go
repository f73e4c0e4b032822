package commands

import (
	"context"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/vessel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/services"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// CreateVesselCommandHandler registers a vessel in a vessel owner's fleet.
type CreateVesselCommandHandler struct {
	uowFactory FleetUoWFactory
	policy     services.VesselPolicy
}

// NewCreateVesselCommandHandler creates a handler for vessel registration.
func NewCreateVesselCommandHandler(uowFactory FleetUoWFactory) CreateVesselCommandHandler {
	return CreateVesselCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewVesselPolicy(),
	}
}

// Handle processes the vessel registration command.
func (h *CreateVesselCommandHandler) Handle(ctx context.Context, cmd CreateVesselCommand) error {
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
			cmd.ActorID().String(), "create", "vessel", "")
	}

	aggregate, err := vessel.NewVessel(
		cmd.VesselID(), cmd.ActingOrgID(), cmd.Name(), cmd.IMONumber(), cmd.VesselType())
	if err != nil {
		return err
	}

	if err = uow.VesselRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
