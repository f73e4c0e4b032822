// Package wizardrepo provides data transfer objects and mapping functions
// for order wizard session persistence. Selected service identifiers are
// stored as child rows so the session table stays free of serialized blobs.
package wizardrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/wizard"
)

// SessionDTO represents the database structure for wizard sessions.
type SessionDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:id"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;column:user_id"`
	OrgID     uuid.UUID  `gorm:"type:uuid;column:org_id"`
	Step      string     `gorm:"column:step"`
	VesselID  *uuid.UUID `gorm:"type:uuid;column:vessel_id"`
	PortID    *uuid.UUID `gorm:"type:uuid;column:port_id"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

// TableName specifies the database table name for wizard sessions.
func (SessionDTO) TableName() string {
	return "wizard_sessions"
}

// SessionServiceDTO represents one selected service in a session draft.
type SessionServiceDTO struct {
	SessionID uuid.UUID `gorm:"type:uuid;primaryKey;column:session_id"`
	ServiceID uuid.UUID `gorm:"type:uuid;primaryKey;column:service_id"`
}

// TableName specifies the database table name for session service picks.
func (SessionServiceDTO) TableName() string {
	return "wizard_session_services"
}

func fromDomain(s *wizard.Session) (SessionDTO, []SessionServiceDTO) {
	var vesselID, portID *uuid.UUID
	if id := s.VesselID(); id != nil {
		raw := id.Bytes()
		vesselID = &raw
	}
	if id := s.PortID(); id != nil {
		raw := id.Bytes()
		portID = &raw
	}

	dto := SessionDTO{
		ID:        s.ID().Bytes(),
		UserID:    s.UserID().Bytes(),
		OrgID:     s.OrgID().Bytes(),
		Step:      s.Step().String(),
		VesselID:  vesselID,
		PortID:    portID,
		UpdatedAt: s.UpdatedAt(),
	}

	serviceIDs := s.ServiceIDs()
	picks := make([]SessionServiceDTO, 0, len(serviceIDs))
	for _, serviceID := range serviceIDs {
		picks = append(picks, SessionServiceDTO{
			SessionID: s.ID().Bytes(),
			ServiceID: serviceID.Bytes(),
		})
	}

	return dto, picks
}

func toDomain(dto SessionDTO, picks []SessionServiceDTO) (*wizard.Session, error) {
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
	step, err := wizard.StepFromString(dto.Step)
	if err != nil {
		return nil, err
	}

	var vesselID, portID *kernel.UUID
	if dto.VesselID != nil {
		vID, vErr := kernel.UUIDFromBytes((*dto.VesselID)[:])
		if vErr != nil {
			return nil, vErr
		}
		vesselID = &vID
	}
	if dto.PortID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.PortID)[:])
		if pErr != nil {
			return nil, pErr
		}
		portID = &pID
	}

	serviceIDs := make([]kernel.UUID, 0, len(picks))
	for _, pick := range picks {
		serviceID, sErr := kernel.UUIDFromBytes(pick.ServiceID[:])
		if sErr != nil {
			return nil, sErr
		}
		serviceIDs = append(serviceIDs, serviceID)
	}

	return wizard.RestoreSession(id, userID, orgID, step, vesselID, portID, serviceIDs, dto.UpdatedAt)
}
