package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/invitation"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/joinrequest"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/organization"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/vessel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/services"
)

func TestVesselPolicyOrg(t *testing.T) {
	policy := services.NewVesselPolicy()

	owningOrg := kernel.NewUUID()
	otherOrg := kernel.NewUUID()
	v, err := vessel.NewVessel(kernel.NewUUID(), owningOrg, "MV Aurora", "9074729", "tanker")
	require.NoError(t, err)

	t.Run("owner admin may update", func(t *testing.T) {
		admin := mustActor(t, owningOrg, actor.BusinessTypeVesselOwner, actor.RoleAdmin)
		assert.True(t, policy.Update(admin, owningOrg, v))
	})

	t.Run("membership and role gate writes without an ownership match", func(t *testing.T) {
		// An admin of a different vessel owner organization passes too.
		// The owning organization is intentionally not compared.
		rival := mustActor(t, otherOrg, actor.BusinessTypeVesselOwner, actor.RoleAdmin)
		assert.True(t, policy.Update(rival, otherOrg, v))
	})

	t.Run("agencies never see fleets", func(t *testing.T) {
		agent := mustActor(t, otherOrg, actor.BusinessTypeShippingAgency, actor.RoleAdmin)
		assert.False(t, policy.ViewAny(agent))
	})

	t.Run("restore and force delete are denied to everyone", func(t *testing.T) {
		platform := mustActor(t, owningOrg, actor.BusinessTypePortzappTeam, actor.RoleAdmin)
		assert.False(t, policy.Restore(platform, owningOrg, v))
		assert.False(t, policy.ForceDelete(platform, owningOrg, v))
	})
}

func TestPortPolicy(t *testing.T) {
	policy := services.NewPortPolicy()
	platformOrg := kernel.NewUUID()

	t.Run("platform admin manages reference data", func(t *testing.T) {
		admin := mustActor(t, platformOrg, actor.BusinessTypePortzappTeam, actor.RoleAdmin)
		assert.True(t, policy.ViewAny(admin))
		assert.True(t, policy.Create(admin, platformOrg))
		assert.True(t, policy.Update(admin, platformOrg))
	})

	t.Run("non admin platform member may only view", func(t *testing.T) {
		viewer := mustActor(t, platformOrg, actor.BusinessTypePortzappTeam, actor.RoleViewer)
		assert.True(t, policy.View(viewer))
		assert.False(t, policy.Create(viewer, platformOrg))
	})

	t.Run("tenants have no access at all", func(t *testing.T) {
		owner := mustActor(t, kernel.NewUUID(), actor.BusinessTypeVesselOwner, actor.RoleAdmin)
		assert.False(t, policy.ViewAny(owner))
	})

	t.Run("ports are never deleted", func(t *testing.T) {
		admin := mustActor(t, platformOrg, actor.BusinessTypePortzappTeam, actor.RoleAdmin)
		assert.False(t, policy.Delete(admin, platformOrg))
		assert.False(t, policy.Restore(admin, platformOrg))
	})
}

func TestOrganizationPolicy_Create(t *testing.T) {
	policy := services.NewOrganizationPolicy()

	t.Run("onboarding actor bootstraps an organization", func(t *testing.T) {
		fresh, err := actor.NewActor(kernel.NewUUID(), nil, true)
		require.NoError(t, err)
		assert.True(t, policy.Create(fresh, kernel.UUID{}))
	})

	t.Run("settled actor needs platform admin", func(t *testing.T) {
		orgID := kernel.NewUUID()
		owner := mustActor(t, orgID, actor.BusinessTypeVesselOwner, actor.RoleAdmin)
		platform := mustActor(t, orgID, actor.BusinessTypePortzappTeam, actor.RoleAdmin)

		assert.False(t, policy.Create(owner, orgID))
		assert.True(t, policy.Create(platform, orgID))
	})
}

func TestOrganizationPolicy_View(t *testing.T) {
	policy := services.NewOrganizationPolicy()

	org, err := organization.NewOrganization(kernel.NewUUID(),
		actor.BusinessTypeShippingAgency, "Gulf Agency Services")
	require.NoError(t, err)

	platform := mustActor(t, kernel.NewUUID(), actor.BusinessTypePortzappTeam, actor.RoleViewer)
	tenant := mustActor(t, kernel.NewUUID(), actor.BusinessTypeShippingAgency, actor.RoleAdmin)

	assert.True(t, policy.View(platform, org))
	assert.False(t, policy.View(tenant, org))
}

func TestUserPolicy(t *testing.T) {
	policy := services.NewUserPolicy()
	orgID := kernel.NewUUID()

	manager := mustActor(t, orgID, actor.BusinessTypeShippingAgency, actor.RoleManager)
	ceo := mustActor(t, orgID, actor.BusinessTypeShippingAgency, actor.RoleCEO)
	colleague := mustActor(t, orgID, actor.BusinessTypeShippingAgency, actor.RoleViewer)
	stranger := mustActor(t, kernel.NewUUID(), actor.BusinessTypeShippingAgency, actor.RoleViewer)

	t.Run("managerial roles list the roster", func(t *testing.T) {
		assert.True(t, policy.ViewAny(manager, orgID))
		assert.False(t, policy.ViewAny(colleague, orgID))
	})

	t.Run("self access always works", func(t *testing.T) {
		assert.True(t, policy.View(colleague, orgID, colleague))
		assert.True(t, policy.Update(colleague, orgID, colleague))
	})

	t.Run("manager views but cannot update colleagues", func(t *testing.T) {
		assert.True(t, policy.View(manager, orgID, colleague))
		assert.False(t, policy.Update(manager, orgID, colleague))
	})

	t.Run("ceo updates and removes colleagues", func(t *testing.T) {
		assert.True(t, policy.Update(ceo, orgID, colleague))
		assert.True(t, policy.Delete(ceo, orgID, colleague))
	})

	t.Run("cross organization access is denied", func(t *testing.T) {
		assert.False(t, policy.View(manager, orgID, stranger))
		assert.False(t, policy.Delete(ceo, orgID, stranger))
	})

	t.Run("self deletion is denied even for admins", func(t *testing.T) {
		admin := mustActor(t, orgID, actor.BusinessTypeShippingAgency, actor.RoleAdmin)
		assert.False(t, policy.Delete(admin, orgID, admin))
	})
}

func TestJoinRequestPolicy(t *testing.T) {
	policy := services.NewJoinRequestPolicy()
	orgID := kernel.NewUUID()

	requester := mustActor(t, kernel.NewUUID(), actor.BusinessTypeVesselOwner, actor.RoleViewer)
	manager := mustActor(t, orgID, actor.BusinessTypeShippingAgency, actor.RoleManager)

	newRequest := func(t *testing.T, userID kernel.UUID) *joinrequest.JoinRequest {
		t.Helper()
		r, err := joinrequest.NewJoinRequest(kernel.NewUUID(), userID, orgID, "", time.Now())
		require.NoError(t, err)
		return r
	}

	t.Run("approval works once, then is denied", func(t *testing.T) {
		r := newRequest(t, requester.ID())

		assert.True(t, policy.Approve(manager, orgID, r))
		require.NoError(t, r.Approve(manager.ID(), time.Now()))

		assert.False(t, policy.Approve(manager, orgID, r))
	})

	t.Run("requester withdraws only while pending", func(t *testing.T) {
		r := newRequest(t, requester.ID())
		assert.True(t, policy.Withdraw(requester, r))

		require.NoError(t, r.Reject(manager.ID(), time.Now()))
		assert.False(t, policy.Withdraw(requester, r))
	})

	t.Run("only the requester may withdraw", func(t *testing.T) {
		r := newRequest(t, requester.ID())
		assert.False(t, policy.Withdraw(manager, r))
	})

	t.Run("anyone may raise a request", func(t *testing.T) {
		assert.True(t, policy.Create(requester))
	})
}

func TestInvitationPolicy(t *testing.T) {
	policy := services.NewInvitationPolicy()
	orgID := kernel.NewUUID()

	inv, err := invitation.NewInvitation(kernel.NewUUID(), orgID, kernel.NewUUID(),
		"ops@example.com", actor.RoleOperations, time.Now().Add(72*time.Hour))
	require.NoError(t, err)

	manager := mustActor(t, orgID, actor.BusinessTypeShippingAgency, actor.RoleManager)
	ceo := mustActor(t, orgID, actor.BusinessTypeShippingAgency, actor.RoleCEO)
	outsideManager := mustActor(t, kernel.NewUUID(), actor.BusinessTypeShippingAgency, actor.RoleManager)

	t.Run("managers of the inviting organization see and edit", func(t *testing.T) {
		assert.True(t, policy.View(manager, orgID, inv))
		assert.True(t, policy.Update(manager, orgID, inv))
	})

	t.Run("revocation needs an executive role", func(t *testing.T) {
		assert.False(t, policy.Delete(manager, orgID, inv))
		assert.True(t, policy.Delete(ceo, orgID, inv))
	})

	t.Run("other organizations are shut out", func(t *testing.T) {
		assert.False(t, policy.View(outsideManager, outsideManager.Memberships()[0].OrganizationID(), inv))
	})

	t.Run("portzapp team oversees invitations", func(t *testing.T) {
		platform := mustActor(t, kernel.NewUUID(), actor.BusinessTypePortzappTeam, actor.RoleViewer)
		assert.True(t, policy.View(platform, kernel.UUID{}, inv))
	})
}
