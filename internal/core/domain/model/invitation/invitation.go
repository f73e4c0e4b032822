// Package invitation provides the Invitation aggregate. Invitations are the
// inverse of join requests: an organization manager invites a person by email
// to join with a preselected role.
package invitation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// Status represents the lifecycle state of an invitation.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota
	// StatusPending means the invitation awaits a response.
	StatusPending
	// StatusAccepted means the invitee joined the organization.
	StatusAccepted
	// StatusDeclined means the invitee turned the invitation down.
	StatusDeclined
	// StatusRevoked means a manager cancelled the invitation.
	StatusRevoked
	// StatusExpired means the invitation outlived its validity window.
	StatusExpired
)

var (
	// ErrInvitationIsNotConstructed is returned when using an improperly
	// initialized Invitation.
	ErrInvitationIsNotConstructed = errors.New(
		"Invitation must be created via NewInvitation constructor")

	// ErrEmailIsInvalid is returned for invitee addresses without an "@".
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("invitee email is malformed")

	// ErrInvitationIsNotPending is returned when responding to or revoking
	// an invitation that has already been resolved.
	ErrInvitationIsNotPending = errs.NewValueIsInvalidError(
		"invitation has already been resolved")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusAccepted: "accepted",
		StatusDeclined: "declined",
		StatusRevoked:  "revoked",
		StatusExpired:  "expired",
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
		return errs.NewValueIsInvalidError(fmt.Sprintf("unknown invitation status: %d", int(s)))
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
		fmt.Sprintf("unknown invitation status: %s", v))
}

// Invitation is an offer to join an organization with a given role.
type Invitation struct {
	id        kernel.UUID
	orgID     kernel.UUID
	invitedBy kernel.UUID
	email     string
	role      actor.Role
	status    Status
	expiresAt time.Time

	isConstructed bool
}

// NewInvitation creates a pending invitation that expires at expiresAt.
func NewInvitation(
	id, orgID, invitedBy kernel.UUID,
	email string,
	role actor.Role,
	expiresAt time.Time,
) (*Invitation, error) {
	i := &Invitation{
		isConstructed: true,
	}

	if err := errors.Join(
		i.setID(id),
		i.setOrgID(orgID),
		i.setInvitedBy(invitedBy),
		i.setEmail(email),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	i.role = role
	i.status = StatusPending
	i.expiresAt = expiresAt
	return i, nil
}

// RestoreInvitation reconstructs an invitation from persistent storage.
func RestoreInvitation(
	id, orgID, invitedBy kernel.UUID,
	email string,
	role actor.Role,
	status Status,
	expiresAt time.Time,
) (*Invitation, error) {
	i, err := NewInvitation(id, orgID, invitedBy, email, role, expiresAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	i.status = status
	return i, nil
}

// Validate ensures the invitation was created through a constructor.
func (i *Invitation) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvitationIsNotConstructed
	}
	return nil
}

// ID returns the invitation's unique identifier.
func (i *Invitation) ID() kernel.UUID { return i.id }

// OrgID returns the inviting organization.
func (i *Invitation) OrgID() kernel.UUID { return i.orgID }

// InvitedBy returns the manager who issued the invitation.
func (i *Invitation) InvitedBy() kernel.UUID { return i.invitedBy }

// Email returns the invitee's lowercased email address.
func (i *Invitation) Email() string { return i.email }

// Role returns the role offered to the invitee.
func (i *Invitation) Role() actor.Role { return i.role }

// Status returns the invitation's current status.
func (i *Invitation) Status() Status { return i.status }

// ExpiresAt returns the end of the invitation's validity window.
func (i *Invitation) ExpiresAt() time.Time { return i.expiresAt }

// AddressedTo reports whether the invitation targets the given email address,
// comparing case-insensitively.
func (i *Invitation) AddressedTo(email string) bool {
	return i.email == strings.ToLower(strings.TrimSpace(email))
}

// Accept records that the invitee joined. Accepting an invitation past its
// expiry marks it expired and fails.
func (i *Invitation) Accept(now time.Time) error {
	if err := i.ensurePending(now); err != nil {
		return err
	}
	i.status = StatusAccepted
	return nil
}

// Decline records that the invitee turned the invitation down.
func (i *Invitation) Decline(now time.Time) error {
	if err := i.ensurePending(now); err != nil {
		return err
	}
	i.status = StatusDeclined
	return nil
}

// Revoke cancels a pending invitation on behalf of the organization.
func (i *Invitation) Revoke() error {
	if i.status != StatusPending {
		return ErrInvitationIsNotPending
	}
	i.status = StatusRevoked
	return nil
}

func (i *Invitation) ensurePending(now time.Time) error {
	if i.status == StatusPending && now.After(i.expiresAt) {
		i.status = StatusExpired
	}
	if i.status != StatusPending {
		return ErrInvitationIsNotPending
	}
	return nil
}

func (i *Invitation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invitation) setOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orgID")
	}
	i.orgID = id
	return nil
}

func (i *Invitation) setInvitedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("invitedBy")
	}
	i.invitedBy = id
	return nil
}

func (i *Invitation) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}
	i.email = email
	return nil
}
