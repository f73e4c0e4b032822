package services

import (
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
)

// OrderPolicy decides what an actor may do with orders.
//
// Visibility rules:
//   - portzapp team members see every order
//   - vessel owners see orders placed by their own organization
//   - shipping agencies see orders on which they hold a fulfilling group
//
// Only a vessel owner admin may place an order. Updates and deletes are open
// to the portzapp team anywhere and to vessel owner admins on their own
// orders. Restore and force-delete have no allow rule and are always denied.
type OrderPolicy struct{}

// NewOrderPolicy creates a new OrderPolicy instance.
func NewOrderPolicy() OrderPolicy {
	return OrderPolicy{}
}

// ViewAny reports whether the actor may list orders at all. The listing
// itself is scoped per organization by the query layer.
func (OrderPolicy) ViewAny(a *actor.Actor) bool {
	return actorOK(a)
}

// View reports whether the actor, acting for actingOrgID, may see the order.
// fulfillingOrgIDs names the organizations holding a fulfilling group on the
// order.
func (OrderPolicy) View(
	a *actor.Actor,
	actingOrgID kernel.UUID,
	o *order.Order,
	fulfillingOrgIDs []kernel.UUID,
) bool {
	if !actorOK(a) || o.Validate() != nil {
		return false
	}
	if a.IsPortzappTeam() {
		return true
	}
	if memberAs(a, actingOrgID, actor.BusinessTypeVesselOwner) {
		return o.PlacedByOrgID().IsEqual(actingOrgID)
	}
	if memberAs(a, actingOrgID, actor.BusinessTypeShippingAgency) {
		for _, orgID := range fulfillingOrgIDs {
			if orgID.IsEqual(actingOrgID) {
				return true
			}
		}
	}
	return false
}

// Create reports whether the actor may place an order for actingOrgID.
func (OrderPolicy) Create(a *actor.Actor, actingOrgID kernel.UUID) bool {
	if !actorOK(a) {
		return false
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeVesselOwner) && roleAdmin(a, actingOrgID)
}

// Update reports whether the actor may modify the order.
func (p OrderPolicy) Update(a *actor.Actor, actingOrgID kernel.UUID, o *order.Order) bool {
	if !actorOK(a) || o.Validate() != nil {
		return false
	}
	if a.IsPortzappTeam() {
		return true
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeVesselOwner) &&
		roleAdmin(a, actingOrgID) &&
		o.PlacedByOrgID().IsEqual(actingOrgID)
}

// Delete follows the same rule as Update.
func (p OrderPolicy) Delete(a *actor.Actor, actingOrgID kernel.UUID, o *order.Order) bool {
	return p.Update(a, actingOrgID, o)
}

// Restore is always denied.
func (OrderPolicy) Restore(*actor.Actor, kernel.UUID, *order.Order) bool { return false }

// ForceDelete is always denied.
func (OrderPolicy) ForceDelete(*actor.Actor, kernel.UUID, *order.Order) bool { return false }

// OrderGroupPolicy decides what an actor may do with order groups.
//
// Listing requires a shipping agency membership; the portzapp team is
// deliberately not included here. A group is visible to the vessel owner
// that placed the parent order and to the fulfilling agency. Only the
// fulfilling agency may update a group, and only the placing vessel owner
// may delete one, while it is still pending.
type OrderGroupPolicy struct{}

// NewOrderGroupPolicy creates a new OrderGroupPolicy instance.
func NewOrderGroupPolicy() OrderGroupPolicy {
	return OrderGroupPolicy{}
}

// ViewAny reports whether the actor may list order groups for actingOrgID.
func (OrderGroupPolicy) ViewAny(a *actor.Actor, actingOrgID kernel.UUID) bool {
	if !actorOK(a) {
		return false
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeShippingAgency)
}

// View reports whether the actor may see the group. parent is the group's
// parent order.
func (OrderGroupPolicy) View(
	a *actor.Actor,
	actingOrgID kernel.UUID,
	g *order.OrderGroup,
	parent *order.Order,
) bool {
	if !actorOK(a) || g.Validate() != nil || parent.Validate() != nil {
		return false
	}
	if memberAs(a, actingOrgID, actor.BusinessTypeVesselOwner) &&
		parent.PlacedByOrgID().IsEqual(actingOrgID) {
		return true
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeShippingAgency) &&
		g.FulfillingOrgID().IsEqual(actingOrgID)
}

// Create reports whether the actor may create order groups for actingOrgID.
// Groups come into being when a vessel owner places an order, so a vessel
// owner membership is the only requirement.
func (OrderGroupPolicy) Create(a *actor.Actor, actingOrgID kernel.UUID) bool {
	if !actorOK(a) {
		return false
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeVesselOwner)
}

// Update reports whether the actor may transition or annotate the group.
func (OrderGroupPolicy) Update(a *actor.Actor, actingOrgID kernel.UUID, g *order.OrderGroup) bool {
	if !actorOK(a) || g.Validate() != nil {
		return false
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeShippingAgency) &&
		g.FulfillingOrgID().IsEqual(actingOrgID)
}

// Delete reports whether the actor may remove the group. Only the placing
// vessel owner may, and only while the group is still pending.
func (OrderGroupPolicy) Delete(
	a *actor.Actor,
	actingOrgID kernel.UUID,
	g *order.OrderGroup,
	parent *order.Order,
) bool {
	if !actorOK(a) || g.Validate() != nil || parent.Validate() != nil {
		return false
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeVesselOwner) &&
		parent.PlacedByOrgID().IsEqual(actingOrgID) &&
		g.Status() == order.StatusPending
}
