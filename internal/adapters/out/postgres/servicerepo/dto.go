// Package servicerepo provides data transfer objects and mapping functions
// for catalog service persistence.
package servicerepo

import (
	"github.com/google/uuid"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/service"
)

// ServiceDTO represents the database structure for catalog services.
type ServiceDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;column:id"`
	OrgID         uuid.UUID  `gorm:"type:uuid;index;column:org_id"`
	Name          string     `gorm:"column:name"`
	PriceCents    int64      `gorm:"column:price_cents"`
	Status        string     `gorm:"index;column:status"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;column:category_id"`
	SubCategoryID *uuid.UUID `gorm:"type:uuid;column:sub_category_id"`
}

// TableName specifies the database table name for catalog services.
func (ServiceDTO) TableName() string {
	return "services"
}

func fromDomain(s *service.Service) ServiceDTO {
	return ServiceDTO{
		ID:            s.ID().Bytes(),
		OrgID:         s.OrgID().Bytes(),
		Name:          s.Name(),
		PriceCents:    s.Price(),
		Status:        s.Status().String(),
		CategoryID:    optionalUUID(s.CategoryID()),
		SubCategoryID: optionalUUID(s.SubCategoryID()),
	}
}

func toDomain(dto ServiceDTO) (*service.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}
	status, err := service.CatalogStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	categoryID, err := optionalKernelUUID(dto.CategoryID)
	if err != nil {
		return nil, err
	}
	subCategoryID, err := optionalKernelUUID(dto.SubCategoryID)
	if err != nil {
		return nil, err
	}

	return service.RestoreService(id, orgID, dto.Name, dto.PriceCents, status, categoryID, subCategoryID)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
