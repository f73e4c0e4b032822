package services

import (
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/service"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/vessel"
)

// ServicePolicy decides what an actor may do with catalog services.
//
// The catalog is public: any authenticated actor may browse it. Writes
// require a shipping agency membership in the owning organization; deletes
// additionally require the admin role.
type ServicePolicy struct{}

// NewServicePolicy creates a new ServicePolicy instance.
func NewServicePolicy() ServicePolicy {
	return ServicePolicy{}
}

// ViewAny reports whether the actor may browse the catalog.
func (ServicePolicy) ViewAny(a *actor.Actor) bool {
	return actorOK(a)
}

// View reports whether the actor may see the service.
func (ServicePolicy) View(a *actor.Actor, s *service.Service) bool {
	return actorOK(a) && s.Validate() == nil
}

// Create reports whether the actor may add services to actingOrgID's catalog.
func (ServicePolicy) Create(a *actor.Actor, actingOrgID kernel.UUID) bool {
	if !actorOK(a) {
		return false
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeShippingAgency)
}

// Update reports whether the actor may change the service. Any role within
// the owning agency may edit its own catalog.
func (ServicePolicy) Update(a *actor.Actor, actingOrgID kernel.UUID, s *service.Service) bool {
	if !actorOK(a) || s.Validate() != nil {
		return false
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeShippingAgency) &&
		s.OrgID().IsEqual(actingOrgID) &&
		a.RoleIn(actingOrgID) != actor.RoleUnknown
}

// Delete reports whether the actor may remove the service. Only the owning
// agency's admin may.
func (ServicePolicy) Delete(a *actor.Actor, actingOrgID kernel.UUID, s *service.Service) bool {
	if !actorOK(a) || s.Validate() != nil {
		return false
	}
	return memberAs(a, actingOrgID, actor.BusinessTypeShippingAgency) &&
		s.OrgID().IsEqual(actingOrgID) &&
		roleAdmin(a, actingOrgID)
}

// Restore is always denied.
func (ServicePolicy) Restore(*actor.Actor, kernel.UUID, *service.Service) bool { return false }

// ForceDelete is always denied.
func (ServicePolicy) ForceDelete(*actor.Actor, kernel.UUID, *service.Service) bool { return false }

// VesselPolicy decides what an actor may do with vessels.
//
// Fleet pages are visible to vessel owners and the portzapp team. Writes
// require an admin role in a vessel owner or portzapp organization. Note
// that instance writes check membership and role only; the vessel's owning
// organization is not compared against the acting organization. This
// mirrors the behavior the rest of the system depends on and is recorded
// as an open design decision rather than silently tightened.
type VesselPolicy struct{}

// NewVesselPolicy creates a new VesselPolicy instance.
func NewVesselPolicy() VesselPolicy {
	return VesselPolicy{}
}

// ViewAny reports whether the actor may list vessels.
func (VesselPolicy) ViewAny(a *actor.Actor) bool {
	if !actorOK(a) {
		return false
	}
	return a.HasBusinessType(actor.BusinessTypeVesselOwner) || a.IsPortzappTeam()
}

// View follows the same rule as ViewAny.
func (p VesselPolicy) View(a *actor.Actor, v *vessel.Vessel) bool {
	return p.ViewAny(a) && v.Validate() == nil
}

// Create reports whether the actor may register vessels under actingOrgID.
func (VesselPolicy) Create(a *actor.Actor, actingOrgID kernel.UUID) bool {
	if !actorOK(a) {
		return false
	}
	if !memberAs(a, actingOrgID, actor.BusinessTypeVesselOwner) &&
		!memberAs(a, actingOrgID, actor.BusinessTypePortzappTeam) {
		return false
	}
	return roleAdmin(a, actingOrgID)
}

// Update reports whether the actor may change the vessel.
func (p VesselPolicy) Update(a *actor.Actor, actingOrgID kernel.UUID, v *vessel.Vessel) bool {
	return v.Validate() == nil && p.Create(a, actingOrgID)
}

// Delete follows the same rule as Update.
func (p VesselPolicy) Delete(a *actor.Actor, actingOrgID kernel.UUID, v *vessel.Vessel) bool {
	return p.Update(a, actingOrgID, v)
}

// Restore is always denied.
func (VesselPolicy) Restore(*actor.Actor, kernel.UUID, *vessel.Vessel) bool { return false }

// ForceDelete is always denied.
func (VesselPolicy) ForceDelete(*actor.Actor, kernel.UUID, *vessel.Vessel) bool { return false }

// PortPolicy decides what an actor may do with ports of call. Ports are
// platform reference data: every action requires a portzapp team membership,
// writes require the admin role, and deletion is never allowed.
type PortPolicy struct{}

// NewPortPolicy creates a new PortPolicy instance.
func NewPortPolicy() PortPolicy {
	return PortPolicy{}
}

// ViewAny reports whether the actor may list ports.
func (PortPolicy) ViewAny(a *actor.Actor) bool {
	return actorOK(a) && a.IsPortzappTeam()
}

// View follows the same rule as ViewAny.
func (p PortPolicy) View(a *actor.Actor) bool {
	return p.ViewAny(a)
}

// Create reports whether the actor may add ports under actingOrgID.
func (PortPolicy) Create(a *actor.Actor, actingOrgID kernel.UUID) bool {
	if !actorOK(a) {
		return false
	}
	return memberAs(a, actingOrgID, actor.BusinessTypePortzappTeam) && roleAdmin(a, actingOrgID)
}

// Update follows the same rule as Create.
func (p PortPolicy) Update(a *actor.Actor, actingOrgID kernel.UUID) bool {
	return p.Create(a, actingOrgID)
}

// Delete is always denied.
func (PortPolicy) Delete(*actor.Actor, kernel.UUID) bool { return false }

// Restore is always denied.
func (PortPolicy) Restore(*actor.Actor, kernel.UUID) bool { return false }
