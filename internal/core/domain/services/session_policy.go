package services

import (
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/chat"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/wizard"
)

// ChatConversationPolicy decides what an actor may do with conversations.
// The only capability is participation: an actor who currently sits on the
// roster may read and post. Conversations are created and torn down by the
// system alongside their order group, so create, update and delete are
// denied to everyone.
type ChatConversationPolicy struct{}

// NewChatConversationPolicy creates a new ChatConversationPolicy instance.
func NewChatConversationPolicy() ChatConversationPolicy {
	return ChatConversationPolicy{}
}

// Participate reports whether the actor is an active participant.
func (ChatConversationPolicy) Participate(a *actor.Actor, c *chat.Conversation) bool {
	if !actorOK(a) || c.Validate() != nil {
		return false
	}
	return c.IsActiveParticipant(a.ID())
}

// View follows the same rule as Participate.
func (p ChatConversationPolicy) View(a *actor.Actor, c *chat.Conversation) bool {
	return p.Participate(a, c)
}

// Create is always denied.
func (ChatConversationPolicy) Create(*actor.Actor) bool { return false }

// Update is always denied.
func (ChatConversationPolicy) Update(*actor.Actor, *chat.Conversation) bool { return false }

// Delete is always denied.
func (ChatConversationPolicy) Delete(*actor.Actor, *chat.Conversation) bool { return false }

// WizardSessionPolicy decides what an actor may do with order wizard
// sessions. Sessions are personal drafts: the owner works on their own
// session under their own vessel owner organization, and the portzapp team
// may step in anywhere.
type WizardSessionPolicy struct{}

// NewWizardSessionPolicy creates a new WizardSessionPolicy instance.
func NewWizardSessionPolicy() WizardSessionPolicy {
	return WizardSessionPolicy{}
}

// Create reports whether the actor may start a session for actingOrgID.
func (WizardSessionPolicy) Create(a *actor.Actor, actingOrgID kernel.UUID) bool {
	if !actorOK(a) {
		return false
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeVesselOwner)
}

// View reports whether the actor may read the session.
func (WizardSessionPolicy) View(a *actor.Actor, actingOrgID kernel.UUID, s *wizard.Session) bool {
	if !actorOK(a) || s.Validate() != nil {
		return false
	}
	if a.IsPortzappTeam() {
		return true
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeVesselOwner) &&
		s.OwnedBy(a.ID()) &&
		s.OrgID().IsEqual(actingOrgID)
}

// Update follows the same rule as View.
func (p WizardSessionPolicy) Update(a *actor.Actor, actingOrgID kernel.UUID, s *wizard.Session) bool {
	return p.View(a, actingOrgID, s)
}

// Delete follows the same rule as View.
func (p WizardSessionPolicy) Delete(a *actor.Actor, actingOrgID kernel.UUID, s *wizard.Session) bool {
	return p.View(a, actingOrgID, s)
}

// Restore reports whether the actor may restore the session. Portzapp team
// only.
func (WizardSessionPolicy) Restore(a *actor.Actor, s *wizard.Session) bool {
	return actorOK(a) && s.Validate() == nil && a.IsPortzappTeam()
}

// ForceDelete follows the same rule as Restore.
func (p WizardSessionPolicy) ForceDelete(a *actor.Actor, s *wizard.Session) bool {
	return p.Restore(a, s)
}
