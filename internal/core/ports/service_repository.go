package ports

import (
	"context"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/service"
)

// ServiceRepository defines the persistence contract for catalog services.
type ServiceRepository interface {
	// Add persists a new catalog service.
	Add(ctx context.Context, aggregate *service.Service) error

	// Update persists changes to an existing catalog service.
	Update(ctx context.Context, aggregate *service.Service) error

	// Get retrieves a service by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*service.Service, error)

	// GetByIDs retrieves the services named by ids. Order placement uses
	// this to snapshot contractual prices in one round trip.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*service.Service, error)
}
