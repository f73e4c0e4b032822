package commands

import (
	"context"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/joinrequest"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/services"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// joinRequestReviewer is the shared machinery behind approval and rejection.
// The policy gates on the request still being pending, so a second review of
// the same request is denied rather than failing deeper in the domain.
type joinRequestReviewer struct {
	uowFactory MembershipUoWFactory
	policy     services.JoinRequestPolicy
}

func newJoinRequestReviewer(uowFactory MembershipUoWFactory) joinRequestReviewer {
	return joinRequestReviewer{
		uowFactory: uowFactory,
		policy:     services.NewJoinRequestPolicy(),
	}
}

func (r *joinRequestReviewer) review(
	ctx context.Context,
	cmd joinRequestCommand,
	action string,
	mutate func(req *joinrequest.JoinRequest) error,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := r.uowFactory.Create()
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

	requests := uow.JoinRequestRepository()
	req, err := requests.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	allowed := false
	switch action {
	case "approve":
		allowed = r.policy.Approve(act, cmd.ActingOrgID(), req)
	case "reject":
		allowed = r.policy.Reject(act, cmd.ActingOrgID(), req)
	}
	if !allowed {
		return errs.NewPermissionDeniedError(
			cmd.ActorID().String(), action, "join_request", cmd.RequestID().String())
	}

	if err = mutate(req); err != nil {
		return err
	}
	if err = requests.Update(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ApproveJoinRequestCommandHandler resolves a pending join request in the
// requester's favor.
type ApproveJoinRequestCommandHandler struct {
	joinRequestReviewer
}

// NewApproveJoinRequestCommandHandler creates a handler for approvals.
func NewApproveJoinRequestCommandHandler(uowFactory MembershipUoWFactory) ApproveJoinRequestCommandHandler {
	return ApproveJoinRequestCommandHandler{newJoinRequestReviewer(uowFactory)}
}

// Handle processes the approval command.
func (h *ApproveJoinRequestCommandHandler) Handle(ctx context.Context, cmd ApproveJoinRequestCommand) error {
	return h.review(ctx, cmd.joinRequestCommand, "approve",
		func(req *joinrequest.JoinRequest) error {
			return req.Approve(cmd.ActorID(), time.Now())
		})
}

// RejectJoinRequestCommandHandler declines a pending join request.
type RejectJoinRequestCommandHandler struct {
	joinRequestReviewer
}

// NewRejectJoinRequestCommandHandler creates a handler for rejections.
func NewRejectJoinRequestCommandHandler(uowFactory MembershipUoWFactory) RejectJoinRequestCommandHandler {
	return RejectJoinRequestCommandHandler{newJoinRequestReviewer(uowFactory)}
}

// Handle processes the rejection command.
func (h *RejectJoinRequestCommandHandler) Handle(ctx context.Context, cmd RejectJoinRequestCommand) error {
	return h.review(ctx, cmd.joinRequestCommand, "reject",
		func(req *joinrequest.JoinRequest) error {
			return req.Reject(cmd.ActorID(), time.Now())
		})
}

// WithdrawJoinRequestCommandHandler cancels the actor's own pending request.
type WithdrawJoinRequestCommandHandler struct {
	uowFactory MembershipUoWFactory
	policy     services.JoinRequestPolicy
}

// NewWithdrawJoinRequestCommandHandler creates a handler for withdrawals.
func NewWithdrawJoinRequestCommandHandler(uowFactory MembershipUoWFactory) WithdrawJoinRequestCommandHandler {
	return WithdrawJoinRequestCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewJoinRequestPolicy(),
	}
}

// Handle processes the withdrawal command.
func (h *WithdrawJoinRequestCommandHandler) Handle(ctx context.Context, cmd WithdrawJoinRequestCommand) error {
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

	requests := uow.JoinRequestRepository()
	req, err := requests.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}
	if !h.policy.Withdraw(act, req) {
		return errs.NewPermissionDeniedError(
			cmd.ActorID().String(), "withdraw", "join_request", cmd.RequestID().String())
	}

	if err = req.Withdraw(time.Now()); err != nil {
		return err
	}
	if err = requests.Update(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
