package actor_test

import (
	"testing"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMembership(t *testing.T, orgID kernel.UUID, bt actor.BusinessType, role actor.Role) actor.Membership {
	t.Helper()
	m, err := actor.NewMembership(orgID, bt, role)
	require.NoError(t, err)
	return m
}

func TestNewMembership(t *testing.T) {
	t.Run("should create membership with valid fields", func(t *testing.T) {
		orgID := kernel.NewUUID()

		m, err := actor.NewMembership(orgID, actor.BusinessTypeVesselOwner, actor.RoleAdmin)

		require.NoError(t, err)
		assert.True(t, m.OrganizationID().IsEqual(orgID))
		assert.Equal(t, actor.BusinessTypeVesselOwner, m.BusinessType())
		assert.Equal(t, actor.RoleAdmin, m.Role())
	})

	t.Run("should reject invalid fields", func(t *testing.T) {
		_, err := actor.NewMembership(kernel.UUID{}, actor.BusinessTypeUnknown, actor.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m actor.Membership
		require.Error(t, m.Validate())
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should create actor without memberships", func(t *testing.T) {
		a, err := actor.NewActor(kernel.NewUUID(), nil, true)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.IsOnboardingPending())
		assert.Empty(t, a.Memberships())
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := actor.NewActor(kernel.UUID{}, nil, false)
		require.Error(t, err)
	})

	t.Run("should reject unconstructed membership", func(t *testing.T) {
		_, err := actor.NewActor(kernel.NewUUID(), []actor.Membership{{}}, false)
		require.Error(t, err)
	})
}

func TestActor_MembershipPredicates(t *testing.T) {
	ownerOrg := kernel.NewUUID()
	agencyOrg := kernel.NewUUID()
	otherOrg := kernel.NewUUID()

	a, err := actor.NewActor(kernel.NewUUID(), []actor.Membership{
		mustMembership(t, ownerOrg, actor.BusinessTypeVesselOwner, actor.RoleAdmin),
		mustMembership(t, agencyOrg, actor.BusinessTypeShippingAgency, actor.RoleViewer),
	}, false)
	require.NoError(t, err)

	t.Run("MemberOf", func(t *testing.T) {
		assert.True(t, a.MemberOf(ownerOrg))
		assert.True(t, a.MemberOf(agencyOrg))
		assert.False(t, a.MemberOf(otherOrg))
	})

	t.Run("RoleIn", func(t *testing.T) {
		assert.Equal(t, actor.RoleAdmin, a.RoleIn(ownerOrg))
		assert.Equal(t, actor.RoleViewer, a.RoleIn(agencyOrg))
		assert.Equal(t, actor.RoleUnknown, a.RoleIn(otherOrg))
	})

	t.Run("BusinessTypeOf", func(t *testing.T) {
		assert.Equal(t, actor.BusinessTypeVesselOwner, a.BusinessTypeOf(ownerOrg))
		assert.Equal(t, actor.BusinessTypeUnknown, a.BusinessTypeOf(otherOrg))
	})

	t.Run("HasBusinessType and IsPortzappTeam", func(t *testing.T) {
		assert.True(t, a.HasBusinessType(actor.BusinessTypeVesselOwner))
		assert.True(t, a.HasBusinessType(actor.BusinessTypeShippingAgency))
		assert.False(t, a.IsPortzappTeam())
	})

	t.Run("platform membership grants IsPortzappTeam", func(t *testing.T) {
		platform, err := actor.NewActor(kernel.NewUUID(), []actor.Membership{
			mustMembership(t, kernel.NewUUID(), actor.BusinessTypePortzappTeam, actor.RoleViewer),
		}, false)
		require.NoError(t, err)

		assert.True(t, platform.IsPortzappTeam())
	})
}

func TestRole(t *testing.T) {
	t.Run("string round trip", func(t *testing.T) {
		for _, r := range []actor.Role{
			actor.RoleAdmin, actor.RoleCEO, actor.RoleManager,
			actor.RoleOperations, actor.RoleFinance, actor.RoleViewer,
		} {
			parsed, err := actor.RoleFromString(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		require.Error(t, actor.RoleUnknown.Validate())
		require.Error(t, actor.Role(42).Validate())
		assert.Equal(t, "unknown", actor.Role(42).String())

		_, err := actor.RoleFromString("root")
		require.Error(t, err)
	})

	t.Run("tiers", func(t *testing.T) {
		assert.True(t, actor.RoleAdmin.IsManagerial())
		assert.True(t, actor.RoleCEO.IsManagerial())
		assert.True(t, actor.RoleManager.IsManagerial())
		assert.False(t, actor.RoleOperations.IsManagerial())
		assert.False(t, actor.RoleViewer.IsManagerial())

		assert.True(t, actor.RoleAdmin.IsExecutive())
		assert.True(t, actor.RoleCEO.IsExecutive())
		assert.False(t, actor.RoleManager.IsExecutive())
	})
}

func TestBusinessType(t *testing.T) {
	t.Run("string round trip", func(t *testing.T) {
		for _, bt := range []actor.BusinessType{
			actor.BusinessTypeVesselOwner,
			actor.BusinessTypeShippingAgency,
			actor.BusinessTypePortzappTeam,
		} {
			parsed, err := actor.BusinessTypeFromString(bt.String())
			require.NoError(t, err)
			assert.Equal(t, bt, parsed)
		}
	})

	t.Run("legacy platform_admin maps to portzapp_team", func(t *testing.T) {
		parsed, err := actor.BusinessTypeFromString("platform_admin")
		require.NoError(t, err)
		assert.Equal(t, actor.BusinessTypePortzappTeam, parsed)
	})

	t.Run("invalid values", func(t *testing.T) {
		require.Error(t, actor.BusinessTypeUnknown.Validate())
		_, err := actor.BusinessTypeFromString("freight_forwarder")
		require.Error(t, err)
	})
}
