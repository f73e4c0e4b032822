// Package vesselrepo provides data transfer objects and mapping functions
// for vessel persistence. IMO number uniqueness is a database constraint;
// the repository maps the driver violation to a domain value error.
package vesselrepo

import (
	"github.com/google/uuid"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/vessel"
)

// VesselDTO represents the database structure for vessels. The specification
// block is embedded with a spec_ column prefix.
type VesselDTO struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey;column:id"`
	OrgID      uuid.UUID         `gorm:"type:uuid;index;column:org_id"`
	Name       string            `gorm:"column:name"`
	IMONumber  string            `gorm:"uniqueIndex;column:imo_number"`
	VesselType string            `gorm:"column:vessel_type"`
	Status     string            `gorm:"column:status"`
	Specs      SpecificationsDTO `gorm:"embedded;embeddedPrefix:spec_"`
}

// TableName specifies the database table name for vessels.
func (VesselDTO) TableName() string {
	return "vessels"
}

// SpecificationsDTO represents the embedded technical data block.
type SpecificationsDTO struct {
	GrossTonnage   int64   `gorm:"column:gross_tonnage"`
	DeadweightTons int64   `gorm:"column:deadweight_tons"`
	LengthMeters   float64 `gorm:"column:length_meters"`
	BeamMeters     float64 `gorm:"column:beam_meters"`
	DraftMeters    float64 `gorm:"column:draft_meters"`
	BuildYear      int     `gorm:"column:build_year"`
	FlagState      string  `gorm:"column:flag_state"`
	RegistryPort   string  `gorm:"column:registry_port"`
}

func fromDomain(v *vessel.Vessel) VesselDTO {
	specs := v.Specs()
	return VesselDTO{
		ID:         v.ID().Bytes(),
		OrgID:      v.OrgID().Bytes(),
		Name:       v.Name(),
		IMONumber:  v.IMONumber(),
		VesselType: v.VesselType(),
		Status:     v.Status().String(),
		Specs: SpecificationsDTO{
			GrossTonnage:   specs.GrossTonnage,
			DeadweightTons: specs.DeadweightTons,
			LengthMeters:   specs.LengthMeters,
			BeamMeters:     specs.BeamMeters,
			DraftMeters:    specs.DraftMeters,
			BuildYear:      specs.BuildYear,
			FlagState:      specs.FlagState,
			RegistryPort:   specs.RegistryPort,
		},
	}
}

func toDomain(dto VesselDTO) (*vessel.Vessel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}
	status, err := vessel.OperationalStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return vessel.RestoreVessel(
		id, orgID, dto.Name, dto.IMONumber, dto.VesselType, status,
		vessel.Specifications{
			GrossTonnage:   dto.Specs.GrossTonnage,
			DeadweightTons: dto.Specs.DeadweightTons,
			LengthMeters:   dto.Specs.LengthMeters,
			BeamMeters:     dto.Specs.BeamMeters,
			DraftMeters:    dto.Specs.DraftMeters,
			BuildYear:      dto.Specs.BuildYear,
			FlagState:      dto.Specs.FlagState,
			RegistryPort:   dto.Specs.RegistryPort,
		})
}
