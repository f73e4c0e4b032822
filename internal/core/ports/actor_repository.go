// Package ports defines the contracts between the application core and
// infrastructure. Repository interfaces give the domain persistence without
// coupling it to a datastore, and the unit of work binds repositories to one
// transaction.
package ports

import (
	"context"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

// ActorRepository loads the acting user's organization memberships. Access
// decisions evaluate against this snapshot; it is loaded once per request,
// never re-queried inside a predicate.
type ActorRepository interface {
	// Get retrieves an actor with all organization memberships.
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)
}
