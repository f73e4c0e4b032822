package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/application/usecases/commands"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/application/usecases/queries"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// Identity headers set by the gateway after authentication. Handlers trust
// them; authorization itself is decided by the policy checks inside the
// command and query handlers.
const (
	HeaderActorID        = "X-Actor-Id"
	HeaderOrganizationID = "X-Organization-Id"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler         commands.PlaceOrderCommandHandler
	acceptGroupHandler        commands.AcceptOrderGroupCommandHandler
	rejectGroupHandler        commands.RejectOrderGroupCommandHandler
	startGroupHandler         commands.StartOrderGroupCommandHandler
	completeGroupHandler      commands.CompleteOrderGroupCommandHandler
	deleteGroupHandler        commands.DeleteOrderGroupCommandHandler
	updateGroupServiceHandler commands.UpdateOrderGroupServiceCommandHandler
	createServiceHandler      commands.CreateServiceCommandHandler
	createVesselHandler       commands.CreateVesselCommandHandler
	approveJoinHandler        commands.ApproveJoinRequestCommandHandler
	rejectJoinHandler         commands.RejectJoinRequestCommandHandler
	withdrawJoinHandler       commands.WithdrawJoinRequestCommandHandler

	// Query handlers
	getOrdersHandler      queries.GetOrdersForActorQueryHandler
	getOrderGroupsHandler queries.GetOrderGroupsForOrganizationQueryHandler
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	PlaceOrder         commands.PlaceOrderCommandHandler
	AcceptGroup        commands.AcceptOrderGroupCommandHandler
	RejectGroup        commands.RejectOrderGroupCommandHandler
	StartGroup         commands.StartOrderGroupCommandHandler
	CompleteGroup      commands.CompleteOrderGroupCommandHandler
	DeleteGroup        commands.DeleteOrderGroupCommandHandler
	UpdateGroupService commands.UpdateOrderGroupServiceCommandHandler
	CreateService      commands.CreateServiceCommandHandler
	CreateVessel       commands.CreateVesselCommandHandler
	ApproveJoin        commands.ApproveJoinRequestCommandHandler
	RejectJoin         commands.RejectJoinRequestCommandHandler
	WithdrawJoin       commands.WithdrawJoinRequestCommandHandler
	GetOrders          queries.GetOrdersForActorQueryHandler
	GetOrderGroups     queries.GetOrderGroupsForOrganizationQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		placeOrderHandler:         handlers.PlaceOrder,
		acceptGroupHandler:        handlers.AcceptGroup,
		rejectGroupHandler:        handlers.RejectGroup,
		startGroupHandler:         handlers.StartGroup,
		completeGroupHandler:      handlers.CompleteGroup,
		deleteGroupHandler:        handlers.DeleteGroup,
		updateGroupServiceHandler: handlers.UpdateGroupService,
		createServiceHandler:      handlers.CreateService,
		createVesselHandler:       handlers.CreateVessel,
		approveJoinHandler:        handlers.ApproveJoin,
		rejectJoinHandler:         handlers.RejectJoin,
		withdrawJoinHandler:       handlers.WithdrawJoin,
		getOrdersHandler:          handlers.GetOrders,
		getOrderGroupsHandler:     handlers.GetOrderGroups,
	}
}

// RegisterRoutes attaches all handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.PlaceOrder)

	api.GET("/order-groups", s.GetOrderGroups)
	api.POST("/order-groups/:id/accept", s.AcceptOrderGroup)
	api.POST("/order-groups/:id/reject", s.RejectOrderGroup)
	api.POST("/order-groups/:id/start", s.StartOrderGroup)
	api.POST("/order-groups/:id/complete", s.CompleteOrderGroup)
	api.DELETE("/order-groups/:id", s.DeleteOrderGroup)
	api.PATCH("/order-groups/:id/services/:lineId", s.UpdateOrderGroupService)

	api.POST("/services", s.CreateService)
	api.POST("/vessels", s.CreateVessel)

	api.POST("/join-requests/:id/approve", s.ApproveJoinRequest)
	api.POST("/join-requests/:id/reject", s.RejectJoinRequest)
	api.POST("/join-requests/:id/withdraw", s.WithdrawJoinRequest)
}

// GetOrders handles GET /api/v1/orders - lists orders visible to the caller.
func (s *Server) GetOrders(ctx echo.Context) error {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrdersForActorQuery(identity.actorID, identity.orgID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:              o.ID.String(),
			PlacedByOrgID:   o.PlacedByOrgID.String(),
			VesselID:        o.VesselID.String(),
			PortID:          o.PortID.String(),
			Status:          o.Status.String(),
			TotalPriceCents: o.TotalPriceCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places an order fanned out across
// fulfilling agencies.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errInvalidBody)
	}

	vesselID, err := kernel.UUIDFromString(req.VesselID)
	if err != nil {
		return badRequest(ctx, err)
	}
	portID, err := kernel.UUIDFromString(req.PortID)
	if err != nil {
		return badRequest(ctx, err)
	}

	groups := make([]commands.OrderGroupSpec, len(req.Groups))
	for i, g := range req.Groups {
		spec, specErr := g.toSpec()
		if specErr != nil {
			return badRequest(ctx, specErr)
		}
		groups[i] = spec
	}

	var wizardSessionID *kernel.UUID
	if req.WizardSessionID != "" {
		id, idErr := kernel.UUIDFromString(req.WizardSessionID)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		wizardSessionID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, identity.actorID, identity.orgID, vesselID, portID, groups, wizardSessionID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrderGroups handles GET /api/v1/order-groups - the fulfilling
// organization's work queue.
func (s *Server) GetOrderGroups(ctx echo.Context) error {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderGroupsForOrganizationQuery(identity.actorID, identity.orgID)
	if err != nil {
		return badRequest(ctx, err)
	}

	groups, err := s.getOrderGroupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderGroupResponse, len(groups))
	for i, g := range groups {
		response[i] = OrderGroupResponse{
			ID:            g.ID.String(),
			OrderID:       g.OrderID.String(),
			Status:        g.Status.String(),
			SubtotalCents: g.SubtotalCents,
			ServiceCount:  g.ServiceCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrderGroup handles POST /api/v1/order-groups/:id/accept.
func (s *Server) AcceptOrderGroup(ctx echo.Context) error {
	return s.transitionGroup(ctx, func(groupID kernel.UUID, caller identity) error {
		cmd, err := commands.NewAcceptOrderGroupCommand(groupID, caller.actorID, caller.orgID)
		if err != nil {
			return err
		}
		return s.acceptGroupHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectOrderGroup handles POST /api/v1/order-groups/:id/reject.
func (s *Server) RejectOrderGroup(ctx echo.Context) error {
	return s.transitionGroup(ctx, func(groupID kernel.UUID, caller identity) error {
		cmd, err := commands.NewRejectOrderGroupCommand(groupID, caller.actorID, caller.orgID)
		if err != nil {
			return err
		}
		return s.rejectGroupHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// StartOrderGroup handles POST /api/v1/order-groups/:id/start.
func (s *Server) StartOrderGroup(ctx echo.Context) error {
	return s.transitionGroup(ctx, func(groupID kernel.UUID, caller identity) error {
		cmd, err := commands.NewStartOrderGroupCommand(groupID, caller.actorID, caller.orgID)
		if err != nil {
			return err
		}
		return s.startGroupHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteOrderGroup handles POST /api/v1/order-groups/:id/complete.
func (s *Server) CompleteOrderGroup(ctx echo.Context) error {
	return s.transitionGroup(ctx, func(groupID kernel.UUID, caller identity) error {
		cmd, err := commands.NewCompleteOrderGroupCommand(groupID, caller.actorID, caller.orgID)
		if err != nil {
			return err
		}
		return s.completeGroupHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeleteOrderGroup handles DELETE /api/v1/order-groups/:id - the placing
// organization withdraws a pending group.
func (s *Server) DeleteOrderGroup(ctx echo.Context) error {
	return s.transitionGroup(ctx, func(groupID kernel.UUID, caller identity) error {
		cmd, err := commands.NewDeleteOrderGroupCommand(groupID, caller.actorID, caller.orgID)
		if err != nil {
			return err
		}
		return s.deleteGroupHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// UpdateOrderGroupService handles PATCH /api/v1/order-groups/:id/services/:lineId.
func (s *Server) UpdateOrderGroupService(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	groupID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateServiceStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errInvalidBody)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderGroupServiceCommand(
		groupID, lineID, caller.actorID, caller.orgID, target)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.updateGroupServiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateService handles POST /api/v1/services - adds a catalog service.
func (s *Server) CreateService(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateServiceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errInvalidBody)
	}

	serviceID := kernel.NewUUID()
	cmd, err := commands.NewCreateServiceCommand(
		serviceID, caller.actorID, caller.orgID, req.Name, req.PriceCents)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createServiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: serviceID.String()})
}

// CreateVessel handles POST /api/v1/vessels - registers a vessel for the
// caller's organization.
func (s *Server) CreateVessel(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateVesselRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errInvalidBody)
	}

	vesselID := kernel.NewUUID()
	cmd, err := commands.NewCreateVesselCommand(
		vesselID, caller.actorID, caller.orgID, req.Name, req.IMONumber, req.VesselType)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createVesselHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: vesselID.String()})
}

// ApproveJoinRequest handles POST /api/v1/join-requests/:id/approve.
func (s *Server) ApproveJoinRequest(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApproveJoinRequestCommand(requestID, caller.actorID, caller.orgID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.approveJoinHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectJoinRequest handles POST /api/v1/join-requests/:id/reject.
func (s *Server) RejectJoinRequest(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRejectJoinRequestCommand(requestID, caller.actorID, caller.orgID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.rejectJoinHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// WithdrawJoinRequest handles POST /api/v1/join-requests/:id/withdraw.
func (s *Server) WithdrawJoinRequest(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewWithdrawJoinRequestCommand(requestID, caller.actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.withdrawJoinHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// transitionGroup factors the shared shape of the group lifecycle endpoints:
// parse identity and group id, run the command, map the error.
func (s *Server) transitionGroup(
	ctx echo.Context,
	run func(groupID kernel.UUID, caller identity) error,
) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	groupID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = run(groupID, caller); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type identity struct {
	actorID kernel.UUID
	orgID   kernel.UUID
}

var (
	errMissingIdentity = errors.New("identity headers are required")
	errInvalidBody     = errors.New("invalid request body")
)

// callerIdentity extracts the authenticated caller from the gateway headers.
func callerIdentity(ctx echo.Context) (identity, error) {
	actorRaw := ctx.Request().Header.Get(HeaderActorID)
	orgRaw := ctx.Request().Header.Get(HeaderOrganizationID)
	if actorRaw == "" || orgRaw == "" {
		return identity{}, errMissingIdentity
	}

	actorID, err := kernel.UUIDFromString(actorRaw)
	if err != nil {
		return identity{}, err
	}
	orgID, err := kernel.UUIDFromString(orgRaw)
	if err != nil {
		return identity{}, err
	}

	return identity{actorID: actorID, orgID: orgID}, nil
}

// writeError maps use case failures to HTTP status codes. Permission checks
// fail closed as 403; losing a compare-and-swap race or requesting an illegal
// transition both report 409 so clients re-read and retry.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrPermissionDenied):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Permission denied",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Not found",
		})
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrentModification):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Conflicting state change: " + err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
