package commands

import (
	"errors"
	"strings"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

var (
	ErrCreateServiceCommandIsNotConstructed = errors.New(
		"CreateServiceCommand must be created via NewCreateServiceCommand constructor",
	)
	ErrServiceNameIsRequired = errors.New("service name is required")
	ErrServicePriceIsInvalid = errors.New("service price must not be negative")
)

// CreateServiceCommand represents a shipping agency adding an offering to
// its catalog. Price is in minor currency units.
type CreateServiceCommand struct { //nolint:recvcheck //using for validation
	serviceID   kernel.UUID
	actorID     kernel.UUID
	actingOrgID kernel.UUID
	name        string
	priceCents  int64

	guard guard.ConstructorGuard
}

// NewCreateServiceCommand creates a command to add a catalog service.
func NewCreateServiceCommand(
	serviceID, actorID, actingOrgID kernel.UUID,
	name string,
	priceCents int64,
) (CreateServiceCommand, error) {
	cmd := CreateServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setServiceID(serviceID),
		cmd.setActorID(actorID),
		cmd.setActingOrgID(actingOrgID),
		cmd.setName(name),
		cmd.setPrice(priceCents),
	); err != nil {
		return CreateServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceCommandIsNotConstructed)
}

// ServiceID returns the identifier the new service will carry.
func (c CreateServiceCommand) ServiceID() kernel.UUID { return c.serviceID }

// ActorID returns the acting user.
func (c CreateServiceCommand) ActorID() kernel.UUID { return c.actorID }

// ActingOrgID returns the agency the service will belong to.
func (c CreateServiceCommand) ActingOrgID() kernel.UUID { return c.actingOrgID }

// Name returns the service's display name.
func (c CreateServiceCommand) Name() string { return c.name }

// PriceCents returns the catalog price in minor currency units.
func (c CreateServiceCommand) PriceCents() int64 { return c.priceCents }

func (c *CreateServiceCommand) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.serviceID = id
	return nil
}

func (c *CreateServiceCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *CreateServiceCommand) setActingOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actingOrgID = id
	return nil
}

func (c *CreateServiceCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrServiceNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateServiceCommand) setPrice(priceCents int64) error {
	if priceCents < 0 {
		return ErrServicePriceIsInvalid
	}
	c.priceCents = priceCents
	return nil
}
