// Package port provides the port-of-call entity. Ports are platform reference
// data maintained by the portzapp team.
package port

import (
	"errors"
	"strings"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

var (
	// ErrPortIsNotConstructed is returned when using an improperly
	// initialized Port.
	ErrPortIsNotConstructed = errors.New("Port must be created via NewPort constructor")

	// ErrNameIsRequired is returned when attempting to create a port without
	// a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrCodeIsInvalid is returned when the UN/LOCODE is not five characters.
	ErrCodeIsInvalid = errs.NewValueIsInvalidError("port code must be a five-character UN/LOCODE")
)

// Port is a port of call referenced by orders.
type Port struct {
	id       kernel.UUID
	name     string
	code     string
	country  string
	position kernel.GeoPosition

	isConstructed bool
}

// NewPort creates a port with a UN/LOCODE and a validated geo position.
func NewPort(id kernel.UUID, name, code, country string, position kernel.GeoPosition) (*Port, error) {
	p := &Port{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCode(code),
		position.Validate(),
	); err != nil {
		return nil, err
	}

	p.country = country
	p.position = position
	return p, nil
}

// RestorePort reconstructs a port from persistent storage.
func RestorePort(id kernel.UUID, name, code, country string, position kernel.GeoPosition) (*Port, error) {
	return NewPort(id, name, code, country, position)
}

// Validate ensures the port was created through a constructor.
func (p *Port) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPortIsNotConstructed
	}
	return nil
}

// ID returns the port's unique identifier.
func (p *Port) ID() kernel.UUID { return p.id }

// Name returns the port's display name.
func (p *Port) Name() string { return p.name }

// Code returns the five-character UN/LOCODE, uppercased.
func (p *Port) Code() string { return p.code }

// Country returns the port's country name.
func (p *Port) Country() string { return p.country }

// Position returns the port's geographic position.
func (p *Port) Position() kernel.GeoPosition { return p.position }

func (p *Port) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Port) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Port) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 5 {
		return ErrCodeIsInvalid
	}
	p.code = code
	return nil
}
