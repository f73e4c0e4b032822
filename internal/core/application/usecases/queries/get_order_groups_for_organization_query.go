package queries

import (
	"errors"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

var (
	ErrGetOrderGroupsForOrganizationQueryIsNotConstructed = errors.New(
		"GetOrderGroupsForOrganizationQuery must be created via NewGetOrderGroupsForOrganizationQuery constructor",
	)
)

// GetOrderGroupsForOrganizationQuery lists the work queue of a fulfilling
// shipping agency: every order group assigned to the organization, with its
// line item count. Only shipping agency members of the organization get
// results; the platform team is deliberately excluded from this listing, as
// it is from the group viewAny rule.
type GetOrderGroupsForOrganizationQuery struct {
	actorID     kernel.UUID
	actingOrgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderGroupsForOrganizationQuery creates a work queue query for one
// organization.
func NewGetOrderGroupsForOrganizationQuery(
	actorID, actingOrgID kernel.UUID,
) (GetOrderGroupsForOrganizationQuery, error) {
	if err := errors.Join(actorID.Validate(), actingOrgID.Validate()); err != nil {
		return GetOrderGroupsForOrganizationQuery{}, err
	}

	return GetOrderGroupsForOrganizationQuery{
		actorID:     actorID,
		actingOrgID: actingOrgID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderGroupsForOrganizationQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderGroupsForOrganizationQueryIsNotConstructed)
}

// ActorID returns the requesting actor.
func (q GetOrderGroupsForOrganizationQuery) ActorID() kernel.UUID { return q.actorID }

// ActingOrgID returns the fulfilling organization whose queue is listed.
func (q GetOrderGroupsForOrganizationQuery) ActingOrgID() kernel.UUID { return q.actingOrgID }

// GetOrderGroupsForOrganizationQueryResponse represents one assigned group.
type GetOrderGroupsForOrganizationQueryResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	Status        order.Status
	SubtotalCents int64
	ServiceCount  int
}
