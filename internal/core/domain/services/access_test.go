package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/service"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/vessel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/services"
)

// mustActor builds an actor with a single membership.
func mustActor(t *testing.T, orgID kernel.UUID, bt actor.BusinessType, role actor.Role) *actor.Actor {
	t.Helper()

	m, err := actor.NewMembership(orgID, bt, role)
	require.NoError(t, err)
	a, err := actor.NewActor(kernel.NewUUID(), []actor.Membership{m}, false)
	require.NoError(t, err)
	return a
}

func mustOrder(t *testing.T, placedByOrgID kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), placedByOrgID, kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func TestOrderPolicy_View(t *testing.T) {
	policy := services.NewOrderPolicy()

	placingOrg := kernel.NewUUID()
	otherOrg := kernel.NewUUID()
	agencyOrg := kernel.NewUUID()
	ord := mustOrder(t, placingOrg)

	t.Run("viewer in placing organization sees the order", func(t *testing.T) {
		viewer := mustActor(t, placingOrg, actor.BusinessTypeVesselOwner, actor.RoleViewer)
		assert.True(t, policy.View(viewer, placingOrg, ord, nil))
	})

	t.Run("admin in another vessel owner organization does not", func(t *testing.T) {
		outsider := mustActor(t, otherOrg, actor.BusinessTypeVesselOwner, actor.RoleAdmin)
		assert.False(t, policy.View(outsider, otherOrg, ord, nil))
	})

	t.Run("agency sees only orders it fulfills on", func(t *testing.T) {
		agent := mustActor(t, agencyOrg, actor.BusinessTypeShippingAgency, actor.RoleOperations)

		assert.False(t, policy.View(agent, agencyOrg, ord, nil))
		assert.True(t, policy.View(agent, agencyOrg, ord, []kernel.UUID{agencyOrg}))
		assert.False(t, policy.View(agent, agencyOrg, ord, []kernel.UUID{otherOrg}))
	})

	t.Run("portzapp team sees everything", func(t *testing.T) {
		platform := mustActor(t, kernel.NewUUID(), actor.BusinessTypePortzappTeam, actor.RoleViewer)
		assert.True(t, policy.View(platform, kernel.UUID{}, ord, nil))
	})

	t.Run("fails closed on nil values", func(t *testing.T) {
		viewer := mustActor(t, placingOrg, actor.BusinessTypeVesselOwner, actor.RoleViewer)

		assert.False(t, policy.View(nil, placingOrg, ord, nil))
		assert.False(t, policy.View(viewer, placingOrg, nil, nil))
	})
}

func TestOrderPolicy_Create(t *testing.T) {
	policy := services.NewOrderPolicy()
	orgID := kernel.NewUUID()

	t.Run("vessel owner admin may place orders", func(t *testing.T) {
		admin := mustActor(t, orgID, actor.BusinessTypeVesselOwner, actor.RoleAdmin)
		assert.True(t, policy.Create(admin, orgID))
	})

	t.Run("lesser roles may not", func(t *testing.T) {
		ceo := mustActor(t, orgID, actor.BusinessTypeVesselOwner, actor.RoleCEO)
		assert.False(t, policy.Create(ceo, orgID))
	})

	t.Run("agencies may not", func(t *testing.T) {
		agent := mustActor(t, orgID, actor.BusinessTypeShippingAgency, actor.RoleAdmin)
		assert.False(t, policy.Create(agent, orgID))
	})
}

func TestOrderPolicy_DestructiveDefaults(t *testing.T) {
	policy := services.NewOrderPolicy()
	orgID := kernel.NewUUID()
	ord := mustOrder(t, orgID)

	for _, a := range []*actor.Actor{
		mustActor(t, orgID, actor.BusinessTypeVesselOwner, actor.RoleAdmin),
		mustActor(t, orgID, actor.BusinessTypePortzappTeam, actor.RoleAdmin),
	} {
		assert.False(t, policy.Restore(a, orgID, ord))
		assert.False(t, policy.ForceDelete(a, orgID, ord))
	}
}

func TestOrderGroupPolicy(t *testing.T) {
	policy := services.NewOrderGroupPolicy()

	placingOrg := kernel.NewUUID()
	agencyOrg := kernel.NewUUID()
	otherAgency := kernel.NewUUID()
	parent := mustOrder(t, placingOrg)

	line, err := order.NewOrderGroupService(kernel.NewUUID(), kernel.NewUUID(), 50000)
	require.NoError(t, err)
	group, err := order.NewOrderGroup(kernel.NewUUID(), parent.ID(), agencyOrg,
		[]*order.OrderGroupService{line})
	require.NoError(t, err)

	t.Run("listing excludes the portzapp team", func(t *testing.T) {
		platform := mustActor(t, kernel.NewUUID(), actor.BusinessTypePortzappTeam, actor.RoleAdmin)
		agent := mustActor(t, agencyOrg, actor.BusinessTypeShippingAgency, actor.RoleViewer)

		assert.False(t, policy.ViewAny(platform, kernel.UUID{}))
		assert.True(t, policy.ViewAny(agent, agencyOrg))
	})

	t.Run("fulfilling agency may update", func(t *testing.T) {
		agent := mustActor(t, agencyOrg, actor.BusinessTypeShippingAgency, actor.RoleOperations)
		rival := mustActor(t, otherAgency, actor.BusinessTypeShippingAgency, actor.RoleAdmin)

		assert.True(t, policy.Update(agent, agencyOrg, group))
		assert.False(t, policy.Update(rival, otherAgency, group))
	})

	t.Run("placing owner may delete only while pending", func(t *testing.T) {
		owner := mustActor(t, placingOrg, actor.BusinessTypeVesselOwner, actor.RoleAdmin)
		assert.True(t, policy.Delete(owner, placingOrg, group, parent))

		accepted, err := order.RestoreOrderGroup(group.ID(), parent.ID(), agencyOrg,
			order.StatusAccepted, []*order.OrderGroupService{line}, nil, nil, nil, "")
		require.NoError(t, err)
		assert.False(t, policy.Delete(owner, placingOrg, accepted, parent))
	})
}

func TestServicePolicy(t *testing.T) {
	policy := services.NewServicePolicy()

	owningOrg := kernel.NewUUID()
	otherOrg := kernel.NewUUID()
	svc, err := service.NewService(kernel.NewUUID(), owningOrg, "Pilotage", 125000)
	require.NoError(t, err)

	t.Run("owning agency admin may delete", func(t *testing.T) {
		admin := mustActor(t, owningOrg, actor.BusinessTypeShippingAgency, actor.RoleAdmin)
		assert.True(t, policy.Delete(admin, owningOrg, svc))
	})

	t.Run("admin of another agency may not, regardless of role", func(t *testing.T) {
		rival := mustActor(t, otherOrg, actor.BusinessTypeShippingAgency, actor.RoleAdmin)
		assert.False(t, policy.Delete(rival, otherOrg, svc))
	})

	t.Run("any role in the owning agency may update", func(t *testing.T) {
		ops := mustActor(t, owningOrg, actor.BusinessTypeShippingAgency, actor.RoleOperations)
		assert.True(t, policy.Update(ops, owningOrg, svc))
	})

	t.Run("catalog is browsable by anyone", func(t *testing.T) {
		owner := mustActor(t, otherOrg, actor.BusinessTypeVesselOwner, actor.RoleViewer)
		assert.True(t, policy.ViewAny(owner))
		assert.True(t, policy.View(owner, svc))
	})
}

func TestVesselPolicy(t *testing.T) {
	policy := services.NewVesselPolicy()

	owningOrg := kernel.NewUUID()
	otherOrg := kernel.NewUUID()
	v, err := vessel.NewVessel(kernel.NewUUID(), owningOrg, "MV Horizon", "9074729", "tanker")
	require.NoError(t, err)

	t.Run("owning org admin may update", func(t *testing.T) {
		admin := mustActor(t, owningOrg, actor.BusinessTypeVesselOwner, actor.RoleAdmin)
		assert.True(t, policy.Update(admin, owningOrg, v))
	})

	// Instance writes check membership and role only; the vessel's owning
	// organization is not compared against the acting organization.
	t.Run("admin of another vessel owner org may also update", func(t *testing.T) {
		rival := mustActor(t, otherOrg, actor.BusinessTypeVesselOwner, actor.RoleAdmin)
		assert.True(t, policy.Update(rival, otherOrg, v))
		assert.True(t, policy.Delete(rival, otherOrg, v))
	})

	t.Run("non-admin role may not write", func(t *testing.T) {
		viewer := mustActor(t, owningOrg, actor.BusinessTypeVesselOwner, actor.RoleViewer)
		assert.False(t, policy.Update(viewer, owningOrg, v))
	})

	t.Run("shipping agency may not write", func(t *testing.T) {
		agency := mustActor(t, otherOrg, actor.BusinessTypeShippingAgency, actor.RoleAdmin)
		assert.False(t, policy.Update(agency, otherOrg, v))
	})
}

func TestPlatformOverrideProperty(t *testing.T) {
	platform := mustActor(t, kernel.NewUUID(), actor.BusinessTypePortzappTeam, actor.RoleViewer)
	ord := mustOrder(t, kernel.NewUUID())

	assert.True(t, services.NewOrderPolicy().View(platform, kernel.UUID{}, ord, nil))
	assert.True(t, services.NewVesselPolicy().ViewAny(platform))
	assert.True(t, services.NewPortPolicy().ViewAny(platform))
	assert.True(t, services.NewOrganizationPolicy().ViewAny(platform))
}
