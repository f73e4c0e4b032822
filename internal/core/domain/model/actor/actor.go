package actor

import (
	"errors"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor instance was not created
	// through the NewActor factory method.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

	// ErrMembershipIsNotConstructed is returned when a Membership was not created
	// through the NewMembership factory method.
	ErrMembershipIsNotConstructed = errors.New("Membership must be created via NewMembership constructor")
)

// Membership is one (organization, business type, role) association of an actor.
// An actor may hold several memberships, each with its own role; the business
// type is denormalized onto the membership so policy predicates never re-query
// organization state.
type Membership struct {
	organizationID kernel.UUID
	businessType   BusinessType
	role           Role

	guard guard.ConstructorGuard
}

// NewMembership creates a validated membership value.
func NewMembership(organizationID kernel.UUID, businessType BusinessType, role Role) (Membership, error) {
	m := Membership{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setOrganizationID(organizationID),
		m.setBusinessType(businessType),
		m.setRole(role),
	); err != nil {
		return Membership{}, err
	}

	return m, nil
}

// Validate ensures the membership was created through the constructor.
func (m Membership) Validate() error {
	return m.guard.Validate(ErrMembershipIsNotConstructed)
}

// OrganizationID returns the organization this membership belongs to.
func (m Membership) OrganizationID() kernel.UUID {
	return m.organizationID
}

// BusinessType returns the business type of the membership's organization.
func (m Membership) BusinessType() BusinessType {
	return m.businessType
}

// Role returns the actor's role within this organization.
func (m Membership) Role() Role {
	return m.role
}

func (m *Membership) setOrganizationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.organizationID = id
	return nil
}

func (m *Membership) setBusinessType(bt BusinessType) error {
	if err := bt.Validate(); err != nil {
		return err
	}
	m.businessType = bt
	return nil
}

func (m *Membership) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	m.role = role
	return nil
}

// Actor is the authenticated user evaluated against permission rules.
// It is an in-memory value object loaded once per request: all organization
// memberships with their business types and roles are resolved up front so
// policy predicates stay pure and never touch a datastore.
//
// The acting organization is always an explicit parameter to permission
// checks rather than ambient actor state, which keeps the dependency visible
// and the predicates testable.
type Actor struct {
	id kernel.UUID

	// memberships holds every organization association of the actor.
	memberships []Membership

	// onboardingPending marks an actor who registered but has not yet joined
	// or created an organization. Organization creation is allowed in this
	// state.
	onboardingPending bool

	guard guard.ConstructorGuard
}

// NewActor creates an Actor from its identifier and resolved memberships.
// Memberships may be empty for a freshly registered actor.
func NewActor(id kernel.UUID, memberships []Membership, onboardingPending bool) (*Actor, error) {
	a := &Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	a.id = id

	for _, m := range memberships {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	a.memberships = append([]Membership(nil), memberships...)
	a.onboardingPending = onboardingPending

	return a, nil
}

// Validate ensures the actor was created through the constructor.
func (a *Actor) Validate() error {
	if a == nil {
		return ErrActorIsNotConstructed
	}
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// Memberships returns a copy of the actor's organization memberships.
func (a *Actor) Memberships() []Membership {
	return append([]Membership(nil), a.memberships...)
}

// IsOnboardingPending reports whether the actor is still in the onboarding
// flow and has not settled into an organization.
func (a *Actor) IsOnboardingPending() bool {
	return a.onboardingPending
}

// IsPortzappTeam reports whether the actor belongs to any organization of
// business type portzapp_team. This is the platform override used by
// view-class policy rules.
func (a *Actor) IsPortzappTeam() bool {
	return a.HasBusinessType(BusinessTypePortzappTeam)
}

// HasBusinessType reports whether any of the actor's memberships carries the
// given business type.
func (a *Actor) HasBusinessType(bt BusinessType) bool {
	for _, m := range a.memberships {
		if m.businessType == bt {
			return true
		}
	}
	return false
}

// MemberOf reports whether the actor holds a membership in the organization.
func (a *Actor) MemberOf(organizationID kernel.UUID) bool {
	_, ok := a.membership(organizationID)
	return ok
}

// RoleIn returns the actor's role within the organization.
// Returns RoleUnknown if the actor is not a member.
func (a *Actor) RoleIn(organizationID kernel.UUID) Role {
	if m, ok := a.membership(organizationID); ok {
		return m.role
	}
	return RoleUnknown
}

// BusinessTypeOf returns the business type of the actor's membership in the
// organization. Returns BusinessTypeUnknown if the actor is not a member.
func (a *Actor) BusinessTypeOf(organizationID kernel.UUID) BusinessType {
	if m, ok := a.membership(organizationID); ok {
		return m.businessType
	}
	return BusinessTypeUnknown
}

func (a *Actor) membership(organizationID kernel.UUID) (Membership, bool) {
	for _, m := range a.memberships {
		if m.organizationID.IsEqual(organizationID) {
			return m, true
		}
	}
	return Membership{}, false
}
