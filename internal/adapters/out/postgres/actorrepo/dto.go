// Package actorrepo loads the acting user's membership snapshot for access
// decisions. Actors are written by the identity flows outside this service's
// write model, so the repository is read-only here.
package actorrepo

import (
	"github.com/google/uuid"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

// ActorDTO represents the database structure for actors.
type ActorDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	OnboardingPending bool      `gorm:"column:onboarding_pending"`
}

// TableName specifies the database table name for actor entities.
func (ActorDTO) TableName() string {
	return "actors"
}

// MembershipDTO represents one actor/organization association. The business
// type is denormalized onto the membership so policy evaluation never joins
// the organizations table.
type MembershipDTO struct {
	ActorID        uuid.UUID `gorm:"type:uuid;primaryKey;column:actor_id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;primaryKey;column:organization_id"`
	BusinessType   string    `gorm:"column:business_type"`
	Role           string    `gorm:"column:role"`
}

// TableName specifies the database table name for membership entities.
func (MembershipDTO) TableName() string {
	return "memberships"
}

func toDomain(dto ActorDTO, membershipDTOs []MembershipDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	memberships := make([]actor.Membership, 0, len(membershipDTOs))
	for _, m := range membershipDTOs {
		orgID, orgErr := kernel.UUIDFromBytes(m.OrganizationID[:])
		if orgErr != nil {
			return nil, orgErr
		}
		businessType, btErr := actor.BusinessTypeFromString(m.BusinessType)
		if btErr != nil {
			return nil, btErr
		}
		role, roleErr := actor.RoleFromString(m.Role)
		if roleErr != nil {
			return nil, roleErr
		}

		membership, mErr := actor.NewMembership(orgID, businessType, role)
		if mErr != nil {
			return nil, mErr
		}
		memberships = append(memberships, membership)
	}

	return actor.NewActor(id, memberships, dto.OnboardingPending)
}
