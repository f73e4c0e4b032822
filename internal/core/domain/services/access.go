package services

import (
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

// The access policies in this package share one evaluation shape: a
// platform-override check first, then a business-type check, then an
// ownership and role check against the acting organization. Each policy
// method is a pure predicate over the actor and entity values passed in.
// A decision is strictly boolean; converting a false into a user-facing
// error is the caller's job.
//
// Every method fails closed: a nil or unconstructed actor or entity yields
// false, never an error.

// actorOK reports whether the actor value is usable for a decision.
func actorOK(a *actor.Actor) bool {
	return a.Validate() == nil
}

// memberAs reports whether the actor holds a membership in orgID under an
// organization of the given business type.
func memberAs(a *actor.Actor, orgID kernel.UUID, bt actor.BusinessType) bool {
	return a.MemberOf(orgID) && a.BusinessTypeOf(orgID) == bt
}

// roleManagerial reports whether the actor's role in orgID is admin, ceo or
// manager.
func roleManagerial(a *actor.Actor, orgID kernel.UUID) bool {
	return a.RoleIn(orgID).IsManagerial()
}

// roleExecutive reports whether the actor's role in orgID is admin or ceo.
func roleExecutive(a *actor.Actor, orgID kernel.UUID) bool {
	return a.RoleIn(orgID).IsExecutive()
}

// roleAdmin reports whether the actor's role in orgID is admin.
func roleAdmin(a *actor.Actor, orgID kernel.UUID) bool {
	return a.RoleIn(orgID) == actor.RoleAdmin
}
