// Package organization provides the tenant entity of the platform. An
// organization's business type determines which workflows it participates in:
// vessel owners place orders, shipping agencies fulfill them, and portzapp
// team organizations administer the platform.
package organization

import (
	"errors"
	"regexp"
	"strings"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

var (
	// ErrOrganizationIsNotConstructed is returned when using an improperly
	// initialized Organization.
	ErrOrganizationIsNotConstructed = errors.New("Organization must be created via NewOrganization constructor")

	// ErrNameIsRequired is returned when attempting to create an organization
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Organization is a tenant. The business type is immutable after creation;
// the slug is derived from the name and unique platform-wide (uniqueness is
// enforced by the persistence layer).
type Organization struct {
	id           kernel.UUID
	businessType actor.BusinessType
	name         string
	slug         string

	isConstructed bool
}

// NewOrganization creates an organization with a slug derived from its name.
func NewOrganization(id kernel.UUID, businessType actor.BusinessType, name string) (*Organization, error) {
	o := &Organization{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBusinessType(businessType),
		o.setName(name),
	); err != nil {
		return nil, err
	}

	o.slug = Slugify(name)
	return o, nil
}

// RestoreOrganization reconstructs an organization from persistent storage,
// preserving the stored slug.
func RestoreOrganization(id kernel.UUID, businessType actor.BusinessType, name, slug string) (*Organization, error) {
	o := &Organization{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBusinessType(businessType),
		o.setName(name),
	); err != nil {
		return nil, err
	}

	o.slug = slug
	return o, nil
}

// Slugify derives a URL-safe slug from an organization name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugStripPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Validate ensures the organization was created through a constructor.
func (o *Organization) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrganizationIsNotConstructed
	}
	return nil
}

// ID returns the organization's unique identifier.
func (o *Organization) ID() kernel.UUID {
	return o.id
}

// BusinessType returns the organization's immutable business type.
func (o *Organization) BusinessType() actor.BusinessType {
	return o.businessType
}

// Name returns the organization's display name.
func (o *Organization) Name() string {
	return o.name
}

// Slug returns the organization's URL-safe slug.
func (o *Organization) Slug() string {
	return o.slug
}

// Rename updates the name and re-derives the slug.
func (o *Organization) Rename(name string) error {
	if err := o.setName(name); err != nil {
		return err
	}
	o.slug = Slugify(name)
	return nil
}

func (o *Organization) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Organization) setBusinessType(bt actor.BusinessType) error {
	if err := bt.Validate(); err != nil {
		return err
	}
	o.businessType = bt
	return nil
}

func (o *Organization) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	o.name = name
	return nil
}
