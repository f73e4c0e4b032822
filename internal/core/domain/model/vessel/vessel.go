// Package vessel provides the vessel entity owned by a vessel-owner
// organization, including IMO number validation and the optional technical
// specification block.
package vessel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

var (
	// ErrVesselIsNotConstructed is returned when using an improperly
	// initialized Vessel.
	ErrVesselIsNotConstructed = errors.New("Vessel must be created via NewVessel constructor")

	// ErrNameIsRequired is returned when attempting to create a vessel
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrIMONumberIsInvalid is returned when the IMO number fails the
	// seven-digit check-digit scheme.
	ErrIMONumberIsInvalid = errs.NewValueIsInvalidError("IMO number")
)

// OperationalStatus is the vessel's availability state.
type OperationalStatus int

const (
	// OperationalStatusUnknown represents an invalid or undefined status.
	OperationalStatusUnknown OperationalStatus = iota
	// OperationalStatusActive means the vessel is in service.
	OperationalStatusActive
	// OperationalStatusLaidUp means the vessel is out of service.
	OperationalStatusLaidUp
	// OperationalStatusUnderMaintenance means the vessel is in a yard period.
	OperationalStatusUnderMaintenance
)

// String returns the snake_case name of the operational status.
func (s OperationalStatus) String() string {
	switch s {
	case OperationalStatusActive:
		return "active"
	case OperationalStatusLaidUp:
		return "laid_up"
	case OperationalStatusUnderMaintenance:
		return "under_maintenance"
	default:
		return "unknown"
	}
}

// OperationalStatusFromString parses the snake_case name of an operational
// status. Returns an error for unrecognized values.
func OperationalStatusFromString(v string) (OperationalStatus, error) {
	switch v {
	case "active":
		return OperationalStatusActive, nil
	case "laid_up":
		return OperationalStatusLaidUp, nil
	case "under_maintenance":
		return OperationalStatusUnderMaintenance, nil
	default:
		return OperationalStatusUnknown, fmt.Errorf("%q is not a valid operational status", v)
	}
}

// Validate checks if the OperationalStatus value is valid.
func (s OperationalStatus) Validate() error {
	switch s {
	case OperationalStatusActive, OperationalStatusLaidUp, OperationalStatusUnderMaintenance:
		return nil
	default:
		return fmt.Errorf("%d is not a valid operational status", s)
	}
}

// Specifications is the optional technical data block for a vessel. All
// fields are optional; zero values mean "not recorded".
type Specifications struct {
	GrossTonnage   int64
	DeadweightTons int64
	LengthMeters   float64
	BeamMeters     float64
	DraftMeters    float64
	BuildYear      int
	FlagState      string
	RegistryPort   string
}

// Vessel is owned exclusively by a vessel-owner organization. The IMO number
// is unique platform-wide (uniqueness is enforced by the persistence layer);
// this package validates its check digit.
type Vessel struct {
	id         kernel.UUID
	orgID      kernel.UUID
	name       string
	imoNumber  string
	vesselType string
	status     OperationalStatus
	specs      Specifications

	isConstructed bool
}

// NewVessel creates an active vessel after validating the IMO number.
func NewVessel(id, orgID kernel.UUID, name, imoNumber, vesselType string) (*Vessel, error) {
	v := &Vessel{
		status:        OperationalStatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setOrgID(orgID),
		v.setName(name),
		v.setIMONumber(imoNumber),
	); err != nil {
		return nil, err
	}

	v.vesselType = vesselType
	return v, nil
}

// RestoreVessel reconstructs a vessel from persistent storage.
func RestoreVessel(
	id, orgID kernel.UUID,
	name, imoNumber, vesselType string,
	status OperationalStatus,
	specs Specifications,
) (*Vessel, error) {
	v := &Vessel{
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setOrgID(orgID),
		v.setName(name),
		v.setIMONumber(imoNumber),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	v.vesselType = vesselType
	v.status = status
	v.specs = specs
	return v, nil
}

// ValidateIMONumber checks the seven-digit IMO number scheme: the last digit
// is a check digit computed as the weighted sum of the first six digits
// (weights 7 down to 2) modulo 10.
func ValidateIMONumber(imo string) error {
	imo = strings.TrimPrefix(imo, "IMO")
	imo = strings.TrimSpace(imo)
	if len(imo) != 7 {
		return ErrIMONumberIsInvalid
	}

	sum := 0
	for i := 0; i < 6; i++ {
		d := imo[i]
		if d < '0' || d > '9' {
			return ErrIMONumberIsInvalid
		}
		sum += int(d-'0') * (7 - i)
	}

	check := imo[6]
	if check < '0' || check > '9' || sum%10 != int(check-'0') {
		return ErrIMONumberIsInvalid
	}
	return nil
}

// Validate ensures the vessel was created through a constructor.
func (v *Vessel) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVesselIsNotConstructed
	}
	return nil
}

// ID returns the vessel's unique identifier.
func (v *Vessel) ID() kernel.UUID { return v.id }

// OrgID returns the owning vessel-owner organization.
func (v *Vessel) OrgID() kernel.UUID { return v.orgID }

// OwnedBy reports whether the vessel belongs to the given organization.
func (v *Vessel) OwnedBy(orgID kernel.UUID) bool { return v.orgID.IsEqual(orgID) }

// Name returns the vessel's name.
func (v *Vessel) Name() string { return v.name }

// IMONumber returns the validated seven-digit IMO number.
func (v *Vessel) IMONumber() string { return v.imoNumber }

// VesselType returns the free-form vessel type (e.g. "bulk_carrier").
func (v *Vessel) VesselType() string { return v.vesselType }

// Status returns the vessel's operational status.
func (v *Vessel) Status() OperationalStatus { return v.status }

// Specs returns the optional technical specification block.
func (v *Vessel) Specs() Specifications { return v.specs }

// SetStatus updates the operational status.
func (v *Vessel) SetStatus(status OperationalStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}

// SetSpecs replaces the technical specification block.
func (v *Vessel) SetSpecs(specs Specifications) {
	v.specs = specs
}

func (v *Vessel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vessel) setOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.orgID = id
	return nil
}

func (v *Vessel) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	v.name = name
	return nil
}

func (v *Vessel) setIMONumber(imo string) error {
	if err := ValidateIMONumber(imo); err != nil {
		return err
	}
	v.imoNumber = strings.TrimSpace(strings.TrimPrefix(imo, "IMO"))
	return nil
}
