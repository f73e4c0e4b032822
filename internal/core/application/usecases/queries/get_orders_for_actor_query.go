package queries

import (
	"errors"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

var (
	ErrGetOrdersForActorQueryIsNotConstructed = errors.New(
		"GetOrdersForActorQuery must be created via NewGetOrdersForActorQuery constructor",
	)
)

// GetOrdersForActorQuery retrieves the orders visible to an actor acting
// within one organization. Visibility follows the same scoping the access
// policies enforce on single entities:
//
//   - platform team members see every order
//   - vessel owner members see the orders their organization placed
//   - shipping agency members see orders their organization has a group on
//   - everyone else sees nothing
//
// Example:
//
//	query, err := queries.NewGetOrdersForActorQuery(actorID, actingOrgID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("Actor sees %d orders\n", len(orders))
type GetOrdersForActorQuery struct {
	actorID     kernel.UUID
	actingOrgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersForActorQuery creates a query scoped to an actor and the
// organization they are acting for.
func NewGetOrdersForActorQuery(actorID, actingOrgID kernel.UUID) (GetOrdersForActorQuery, error) {
	if err := errors.Join(actorID.Validate(), actingOrgID.Validate()); err != nil {
		return GetOrdersForActorQuery{}, err
	}

	return GetOrdersForActorQuery{
		actorID:     actorID,
		actingOrgID: actingOrgID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersForActorQueryIsNotConstructed if validation fails.
func (q GetOrdersForActorQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForActorQueryIsNotConstructed)
}

// ActorID returns the actor whose visibility scopes the result.
func (q GetOrdersForActorQuery) ActorID() kernel.UUID { return q.actorID }

// ActingOrgID returns the organization the actor is acting for.
func (q GetOrdersForActorQuery) ActingOrgID() kernel.UUID { return q.actingOrgID }

// GetOrdersForActorQueryResponse represents one visible order.
type GetOrdersForActorQueryResponse struct {
	ID              kernel.UUID
	PlacedByOrgID   kernel.UUID
	VesselID        kernel.UUID
	PortID          kernel.UUID
	Status          order.OrderStatus
	TotalPriceCents int64
}
