// Package service provides the catalog offering owned by a shipping-agency
// organization. Catalog prices are the source for order line item snapshots;
// changing a catalog price never affects snapshots taken earlier.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

var (
	// ErrServiceIsNotConstructed is returned when using an improperly
	// initialized Service.
	ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

	// ErrNameIsRequired is returned when attempting to create a service
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPriceIsInvalid is returned when attempting to set a negative price.
	ErrPriceIsInvalid = errs.NewValueIsInvalidError("price must not be negative")
)

// CatalogStatus is the availability state of a catalog service.
type CatalogStatus int

const (
	// CatalogStatusUnknown represents an invalid or undefined catalog status.
	CatalogStatusUnknown CatalogStatus = iota
	// CatalogStatusActive means the service can be selected for new orders.
	CatalogStatusActive
	// CatalogStatusInactive means the service is hidden from new orders.
	CatalogStatusInactive
)

// String returns the snake_case name of the catalog status.
func (s CatalogStatus) String() string {
	switch s {
	case CatalogStatusActive:
		return "active"
	case CatalogStatusInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// Validate checks if the CatalogStatus value is valid.
func (s CatalogStatus) Validate() error {
	if s != CatalogStatusActive && s != CatalogStatusInactive {
		return fmt.Errorf("%d is not a valid catalog status", s)
	}
	return nil
}

// CatalogStatusFromString parses a catalog status from its persisted form.
func CatalogStatusFromString(v string) (CatalogStatus, error) {
	switch v {
	case "active":
		return CatalogStatusActive, nil
	case "inactive":
		return CatalogStatusInactive, nil
	default:
		return CatalogStatusUnknown, fmt.Errorf("%q is not a valid catalog status", v)
	}
}

// Service is a catalog offering owned exclusively by one shipping-agency
// organization.
type Service struct {
	id            kernel.UUID
	orgID         kernel.UUID
	name          string
	priceCents    int64
	status        CatalogStatus
	categoryID    *kernel.UUID
	subCategoryID *kernel.UUID

	isConstructed bool
}

// NewService creates an active catalog service.
func NewService(id, orgID kernel.UUID, name string, priceCents int64) (*Service, error) {
	s := &Service{
		status:        CatalogStatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrgID(orgID),
		s.setName(name),
		s.setPrice(priceCents),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreService reconstructs a catalog service from persistent storage.
func RestoreService(
	id, orgID kernel.UUID,
	name string,
	priceCents int64,
	status CatalogStatus,
	categoryID, subCategoryID *kernel.UUID,
) (*Service, error) {
	s := &Service{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrgID(orgID),
		s.setName(name),
		s.setPrice(priceCents),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	s.status = status
	s.categoryID = categoryID
	s.subCategoryID = subCategoryID
	return s, nil
}

// Validate ensures the service was created through a constructor.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID { return s.id }

// OrgID returns the owning shipping-agency organization.
func (s *Service) OrgID() kernel.UUID { return s.orgID }

// Name returns the service's display name.
func (s *Service) Name() string { return s.name }

// Price returns the current catalog price in minor currency units.
func (s *Service) Price() int64 { return s.priceCents }

// Status returns the availability of the service in the catalog.
func (s *Service) Status() CatalogStatus { return s.status }

// CategoryID returns the optional category reference.
func (s *Service) CategoryID() *kernel.UUID { return s.categoryID }

// SubCategoryID returns the optional sub-category reference.
func (s *Service) SubCategoryID() *kernel.UUID { return s.subCategoryID }

// SetPrice updates the catalog price. Existing order line item snapshots are
// unaffected.
func (s *Service) SetPrice(priceCents int64) error {
	return s.setPrice(priceCents)
}

// Activate makes the service selectable for new orders.
func (s *Service) Activate() { s.status = CatalogStatusActive }

// Deactivate hides the service from new orders.
func (s *Service) Deactivate() { s.status = CatalogStatusInactive }

// SetCategory updates the category references.
func (s *Service) SetCategory(categoryID, subCategoryID *kernel.UUID) {
	s.categoryID = categoryID
	s.subCategoryID = subCategoryID
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.orgID = id
	return nil
}

func (s *Service) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Service) setPrice(priceCents int64) error {
	if priceCents < 0 {
		return ErrPriceIsInvalid
	}
	s.priceCents = priceCents
	return nil
}
