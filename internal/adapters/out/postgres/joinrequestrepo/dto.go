// Package joinrequestrepo provides data transfer objects and mapping
// functions for organization join request persistence.
package joinrequestrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/joinrequest"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

// JoinRequestDTO represents the database structure for join requests.
type JoinRequestDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;column:id"`
	UserID     uuid.UUID  `gorm:"type:uuid;index;column:user_id"`
	OrgID      uuid.UUID  `gorm:"type:uuid;index;column:org_id"`
	Status     string     `gorm:"index;column:status"`
	Message    string     `gorm:"column:message"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid;column:reviewed_by"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at"`
}

// TableName specifies the database table name for join requests.
func (JoinRequestDTO) TableName() string {
	return "join_requests"
}

func fromDomain(r *joinrequest.JoinRequest) JoinRequestDTO {
	var reviewedBy *uuid.UUID
	if id := r.ReviewedBy(); id != nil {
		raw := id.Bytes()
		reviewedBy = &raw
	}

	return JoinRequestDTO{
		ID:         r.ID().Bytes(),
		UserID:     r.UserID().Bytes(),
		OrgID:      r.OrgID().Bytes(),
		Status:     r.Status().String(),
		Message:    r.Message(),
		CreatedAt:  r.CreatedAt(),
		ReviewedBy: reviewedBy,
		ReviewedAt: r.ReviewedAt(),
	}
}

func toDomain(dto JoinRequestDTO) (*joinrequest.JoinRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}
	status, err := joinrequest.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var reviewedBy *kernel.UUID
	if dto.ReviewedBy != nil {
		rbID, rbErr := kernel.UUIDFromBytes((*dto.ReviewedBy)[:])
		if rbErr != nil {
			return nil, rbErr
		}
		reviewedBy = &rbID
	}

	return joinrequest.RestoreJoinRequest(
		id, userID, orgID, status, dto.Message, dto.CreatedAt, reviewedBy, dto.ReviewedAt)
}
