// Package joinrequest provides the OrganizationJoinRequest aggregate. A join
// request is raised by a user who wants to become a member of an existing
// organization and is reviewed by that organization's managers.
package joinrequest

import (
	"errors"
	"fmt"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// Status represents the lifecycle state of a join request.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota
	// StatusPending means the request awaits review.
	StatusPending
	// StatusApproved means a manager accepted the request.
	StatusApproved
	// StatusRejected means a manager declined the request.
	StatusRejected
	// StatusWithdrawn means the requester cancelled the request themselves.
	StatusWithdrawn
)

var (
	// ErrJoinRequestIsNotConstructed is returned when using an improperly
	// initialized JoinRequest.
	ErrJoinRequestIsNotConstructed = errors.New(
		"JoinRequest must be created via NewJoinRequest constructor")

	// ErrRequestIsNotPending is returned when reviewing or withdrawing a
	// request that has already been resolved.
	ErrRequestIsNotPending = errs.NewValueIsInvalidError(
		"join request has already been resolved")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusApproved:  "approved",
		StatusRejected:  "rejected",
		StatusWithdrawn: "withdrawn",
	}
}

// String returns the snake_case wire form of the status.
func (s Status) String() string {
	return getStatusStrings()[s]
}

// Validate returns an error if the status is not one of the defined values.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsRequiredError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("unknown join request status: %d", int(s)))
	}
	return nil
}

// StatusFromString parses the wire form of a status.
func StatusFromString(v string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == v && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError(
		fmt.Sprintf("unknown join request status: %s", v))
}

// JoinRequest is a user's request to join an organization.
type JoinRequest struct {
	id      kernel.UUID
	userID  kernel.UUID
	orgID   kernel.UUID
	status  Status
	message string

	createdAt  time.Time
	reviewedBy *kernel.UUID
	reviewedAt *time.Time

	isConstructed bool
}

// NewJoinRequest creates a pending join request.
func NewJoinRequest(id, userID, orgID kernel.UUID, message string, now time.Time) (*JoinRequest, error) {
	r := &JoinRequest{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setUserID(userID),
		r.setOrgID(orgID),
	); err != nil {
		return nil, err
	}

	r.status = StatusPending
	r.message = message
	r.createdAt = now
	return r, nil
}

// RestoreJoinRequest reconstructs a join request from persistent storage.
func RestoreJoinRequest(
	id, userID, orgID kernel.UUID,
	status Status,
	message string,
	createdAt time.Time,
	reviewedBy *kernel.UUID,
	reviewedAt *time.Time,
) (*JoinRequest, error) {
	r := &JoinRequest{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setUserID(userID),
		r.setOrgID(orgID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	r.status = status
	r.message = message
	r.createdAt = createdAt
	r.reviewedBy = reviewedBy
	r.reviewedAt = reviewedAt
	return r, nil
}

// Validate ensures the request was created through a constructor.
func (r *JoinRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrJoinRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *JoinRequest) ID() kernel.UUID { return r.id }

// UserID returns the requesting user.
func (r *JoinRequest) UserID() kernel.UUID { return r.userID }

// OrgID returns the target organization.
func (r *JoinRequest) OrgID() kernel.UUID { return r.orgID }

// Status returns the request's current status.
func (r *JoinRequest) Status() Status { return r.status }

// Message returns the optional note supplied by the requester.
func (r *JoinRequest) Message() string { return r.message }

// CreatedAt returns when the request was raised.
func (r *JoinRequest) CreatedAt() time.Time { return r.createdAt }

// ReviewedBy returns the reviewer's user id, nil while pending.
func (r *JoinRequest) ReviewedBy() *kernel.UUID { return r.reviewedBy }

// ReviewedAt returns when the request was reviewed, nil while pending.
func (r *JoinRequest) ReviewedAt() *time.Time { return r.reviewedAt }

// RaisedBy reports whether the request was raised by the given user.
func (r *JoinRequest) RaisedBy(userID kernel.UUID) bool { return r.userID.IsEqual(userID) }

// Approve resolves a pending request and records the reviewer.
func (r *JoinRequest) Approve(reviewerID kernel.UUID, now time.Time) error {
	return r.review(StatusApproved, reviewerID, now)
}

// Reject resolves a pending request and records the reviewer.
func (r *JoinRequest) Reject(reviewerID kernel.UUID, now time.Time) error {
	return r.review(StatusRejected, reviewerID, now)
}

// Withdraw cancels a pending request on behalf of the requester.
func (r *JoinRequest) Withdraw(now time.Time) error {
	if r.status != StatusPending {
		return ErrRequestIsNotPending
	}
	r.status = StatusWithdrawn
	r.reviewedAt = &now
	return nil
}

func (r *JoinRequest) review(target Status, reviewerID kernel.UUID, now time.Time) error {
	if r.status != StatusPending {
		return ErrRequestIsNotPending
	}
	if err := reviewerID.Validate(); err != nil {
		return err
	}
	r.status = target
	r.reviewedBy = &reviewerID
	r.reviewedAt = &now
	return nil
}

func (r *JoinRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *JoinRequest) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("userID")
	}
	r.userID = id
	return nil
}

func (r *JoinRequest) setOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orgID")
	}
	r.orgID = id
	return nil
}
