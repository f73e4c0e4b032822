package commands

import (
	"errors"
	"strings"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/vessel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

var (
	ErrCreateVesselCommandIsNotConstructed = errors.New(
		"CreateVesselCommand must be created via NewCreateVesselCommand constructor",
	)
	ErrVesselNameIsRequired = errors.New("vessel name is required")
)

// CreateVesselCommand represents a vessel owner registering a vessel in its
// fleet. The IMO number is checksum-validated up front so an invalid number
// never reaches the datastore's uniqueness constraint.
type CreateVesselCommand struct { //nolint:recvcheck //using for validation
	vesselID    kernel.UUID
	actorID     kernel.UUID
	actingOrgID kernel.UUID
	name        string
	imoNumber   string
	vesselType  string

	guard guard.ConstructorGuard
}

// NewCreateVesselCommand creates a command to register a vessel.
func NewCreateVesselCommand(
	vesselID, actorID, actingOrgID kernel.UUID,
	name, imoNumber, vesselType string,
) (CreateVesselCommand, error) {
	cmd := CreateVesselCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVesselID(vesselID),
		cmd.setActorID(actorID),
		cmd.setActingOrgID(actingOrgID),
		cmd.setName(name),
		cmd.setIMONumber(imoNumber),
	); err != nil {
		return CreateVesselCommand{}, err
	}

	cmd.vesselType = vesselType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVesselCommand) Validate() error {
	return c.guard.Validate(ErrCreateVesselCommandIsNotConstructed)
}

// VesselID returns the identifier the new vessel will carry.
func (c CreateVesselCommand) VesselID() kernel.UUID { return c.vesselID }

// ActorID returns the acting user.
func (c CreateVesselCommand) ActorID() kernel.UUID { return c.actorID }

// ActingOrgID returns the organization the vessel will belong to.
func (c CreateVesselCommand) ActingOrgID() kernel.UUID { return c.actingOrgID }

// Name returns the vessel's name.
func (c CreateVesselCommand) Name() string { return c.name }

// IMONumber returns the checksum-validated IMO number.
func (c CreateVesselCommand) IMONumber() string { return c.imoNumber }

// VesselType returns the free-form vessel type.
func (c CreateVesselCommand) VesselType() string { return c.vesselType }

func (c *CreateVesselCommand) setVesselID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vesselID = id
	return nil
}

func (c *CreateVesselCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *CreateVesselCommand) setActingOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actingOrgID = id
	return nil
}

func (c *CreateVesselCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrVesselNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateVesselCommand) setIMONumber(imo string) error {
	if err := vessel.ValidateIMONumber(imo); err != nil {
		return err
	}
	c.imoNumber = imo
	return nil
}
