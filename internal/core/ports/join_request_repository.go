package ports

import (
	"context"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/joinrequest"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

// JoinRequestRepository defines the persistence contract for organization
// join requests.
type JoinRequestRepository interface {
	// Add persists a new join request.
	Add(ctx context.Context, aggregate *joinrequest.JoinRequest) error

	// Update persists a review or withdrawal.
	Update(ctx context.Context, aggregate *joinrequest.JoinRequest) error

	// Get retrieves a join request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*joinrequest.JoinRequest, error)

	// GetPendingForOrganization retrieves the organization's open requests.
	GetPendingForOrganization(ctx context.Context, orgID kernel.UUID) ([]*joinrequest.JoinRequest, error)
}
