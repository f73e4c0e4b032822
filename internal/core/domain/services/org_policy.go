package services

import (
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/invitation"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/joinrequest"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/organization"
)

// OrganizationPolicy decides what an actor may do with organizations.
// The directory of tenants is portzapp team territory; the one exception is
// creation, which is open to actors who are still onboarding and have no
// organization yet.
type OrganizationPolicy struct{}

// NewOrganizationPolicy creates a new OrganizationPolicy instance.
func NewOrganizationPolicy() OrganizationPolicy {
	return OrganizationPolicy{}
}

// ViewAny reports whether the actor may list organizations.
func (OrganizationPolicy) ViewAny(a *actor.Actor) bool {
	return actorOK(a) && a.IsPortzappTeam()
}

// View follows the same rule as ViewAny.
func (p OrganizationPolicy) View(a *actor.Actor, o *organization.Organization) bool {
	return p.ViewAny(a) && o.Validate() == nil
}

// Create reports whether the actor may create an organization. Onboarding
// actors bootstrap their first organization; afterwards only portzapp team
// admins may.
func (OrganizationPolicy) Create(a *actor.Actor, actingOrgID kernel.UUID) bool {
	if !actorOK(a) {
		return false
	}
	if a.IsOnboardingPending() {
		return true
	}
	return memberAs(a, actingOrgID, actor.BusinessTypePortzappTeam) && roleAdmin(a, actingOrgID)
}

// Update reports whether the actor may change the organization.
func (OrganizationPolicy) Update(a *actor.Actor, actingOrgID kernel.UUID, o *organization.Organization) bool {
	if !actorOK(a) || o.Validate() != nil {
		return false
	}
	return memberAs(a, actingOrgID, actor.BusinessTypePortzappTeam) && roleAdmin(a, actingOrgID)
}

// Delete follows the same rule as Update.
func (p OrganizationPolicy) Delete(a *actor.Actor, actingOrgID kernel.UUID, o *organization.Organization) bool {
	return p.Update(a, actingOrgID, o)
}

// Restore is always denied.
func (OrganizationPolicy) Restore(*actor.Actor, kernel.UUID, *organization.Organization) bool {
	return false
}

// ForceDelete is always denied.
func (OrganizationPolicy) ForceDelete(*actor.Actor, kernel.UUID, *organization.Organization) bool {
	return false
}

// UserPolicy decides what an actor may do with other users' accounts.
// Everyone manages themselves; beyond that, member rosters are gated by the
// actor's role tier in the shared organization. Nobody deletes their own
// account through this surface.
type UserPolicy struct{}

// NewUserPolicy creates a new UserPolicy instance.
func NewUserPolicy() UserPolicy {
	return UserPolicy{}
}

// ViewAny reports whether the actor may list the members of actingOrgID.
func (UserPolicy) ViewAny(a *actor.Actor, actingOrgID kernel.UUID) bool {
	return actorOK(a) && roleManagerial(a, actingOrgID)
}

// View reports whether the actor may see the target user's profile.
func (UserPolicy) View(a *actor.Actor, actingOrgID kernel.UUID, target *actor.Actor) bool {
	if !actorOK(a) || target.Validate() != nil {
		return false
	}
	if a.ID().IsEqual(target.ID()) {
		return true
	}
	return roleManagerial(a, actingOrgID) && target.MemberOf(actingOrgID)
}

// Update reports whether the actor may change the target user's membership.
func (UserPolicy) Update(a *actor.Actor, actingOrgID kernel.UUID, target *actor.Actor) bool {
	if !actorOK(a) || target.Validate() != nil {
		return false
	}
	if a.ID().IsEqual(target.ID()) {
		return true
	}
	return roleExecutive(a, actingOrgID) && target.MemberOf(actingOrgID)
}

// Delete reports whether the actor may remove the target user. Self-removal
// is always denied.
func (UserPolicy) Delete(a *actor.Actor, actingOrgID kernel.UUID, target *actor.Actor) bool {
	if !actorOK(a) || target.Validate() != nil {
		return false
	}
	if a.ID().IsEqual(target.ID()) {
		return false
	}
	return roleExecutive(a, actingOrgID) && target.MemberOf(actingOrgID)
}

// JoinRequestPolicy decides what an actor may do with organization join
// requests. Raising a request is open to every authenticated actor. Review
// actions belong to the portzapp team or to managerial roles, and resolve
// only requests that are still pending. Requesters may withdraw their own
// pending requests.
type JoinRequestPolicy struct{}

// NewJoinRequestPolicy creates a new JoinRequestPolicy instance.
func NewJoinRequestPolicy() JoinRequestPolicy {
	return JoinRequestPolicy{}
}

// ViewAny reports whether the actor may list join requests for actingOrgID.
func (JoinRequestPolicy) ViewAny(a *actor.Actor, actingOrgID kernel.UUID) bool {
	if !actorOK(a) {
		return false
	}
	return a.IsPortzappTeam() || roleManagerial(a, actingOrgID)
}

// ViewStatistics follows the same rule as ViewAny.
func (p JoinRequestPolicy) ViewStatistics(a *actor.Actor, actingOrgID kernel.UUID) bool {
	return p.ViewAny(a, actingOrgID)
}

// Manage follows the same rule as ViewAny.
func (p JoinRequestPolicy) Manage(a *actor.Actor, actingOrgID kernel.UUID) bool {
	return p.ViewAny(a, actingOrgID)
}

// Create reports whether the actor may raise a join request.
func (JoinRequestPolicy) Create(a *actor.Actor) bool {
	return actorOK(a)
}

// Approve reports whether the actor may approve the request. Resolved
// requests cannot be approved again.
func (JoinRequestPolicy) Approve(a *actor.Actor, actingOrgID kernel.UUID, r *joinrequest.JoinRequest) bool {
	if !actorOK(a) || r.Validate() != nil {
		return false
	}
	if r.Status() != joinrequest.StatusPending {
		return false
	}
	return a.IsPortzappTeam() || roleManagerial(a, actingOrgID)
}

// Reject follows the same rule as Approve.
func (p JoinRequestPolicy) Reject(a *actor.Actor, actingOrgID kernel.UUID, r *joinrequest.JoinRequest) bool {
	return p.Approve(a, actingOrgID, r)
}

// Withdraw reports whether the actor may withdraw the request. Only the
// requester may, and only while it is pending.
func (JoinRequestPolicy) Withdraw(a *actor.Actor, r *joinrequest.JoinRequest) bool {
	if !actorOK(a) || r.Validate() != nil {
		return false
	}
	return r.RaisedBy(a.ID()) && r.Status() == joinrequest.StatusPending
}

// Update follows the same rule as Withdraw.
func (p JoinRequestPolicy) Update(a *actor.Actor, r *joinrequest.JoinRequest) bool {
	return p.Withdraw(a, r)
}

// Delete follows the same rule as Withdraw.
func (p JoinRequestPolicy) Delete(a *actor.Actor, r *joinrequest.JoinRequest) bool {
	return p.Withdraw(a, r)
}

// InvitationPolicy decides what an actor may do with invitations. Issuing
// and listing invitations is for the portzapp team or managerial roles.
// Instance actions additionally require the invitation to belong to the
// acting organization; revocation is reserved for admins and CEOs.
type InvitationPolicy struct{}

// NewInvitationPolicy creates a new InvitationPolicy instance.
func NewInvitationPolicy() InvitationPolicy {
	return InvitationPolicy{}
}

// ViewAny reports whether the actor may list invitations for actingOrgID.
func (InvitationPolicy) ViewAny(a *actor.Actor, actingOrgID kernel.UUID) bool {
	if !actorOK(a) {
		return false
	}
	return a.IsPortzappTeam() || roleManagerial(a, actingOrgID)
}

// Create follows the same rule as ViewAny.
func (p InvitationPolicy) Create(a *actor.Actor, actingOrgID kernel.UUID) bool {
	return p.ViewAny(a, actingOrgID)
}

// View reports whether the actor may see the invitation.
func (InvitationPolicy) View(a *actor.Actor, actingOrgID kernel.UUID, i *invitation.Invitation) bool {
	if !actorOK(a) || i.Validate() != nil {
		return false
	}
	if a.IsPortzappTeam() {
		return true
	}
	return i.OrgID().IsEqual(actingOrgID) && roleManagerial(a, actingOrgID)
}

// Update follows the same rule as View.
func (p InvitationPolicy) Update(a *actor.Actor, actingOrgID kernel.UUID, i *invitation.Invitation) bool {
	return p.View(a, actingOrgID, i)
}

// Delete reports whether the actor may revoke the invitation.
func (InvitationPolicy) Delete(a *actor.Actor, actingOrgID kernel.UUID, i *invitation.Invitation) bool {
	if !actorOK(a) || i.Validate() != nil {
		return false
	}
	if a.IsPortzappTeam() {
		return true
	}
	return i.OrgID().IsEqual(actingOrgID) && roleExecutive(a, actingOrgID)
}
