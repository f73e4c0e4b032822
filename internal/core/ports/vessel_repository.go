package ports

import (
	"context"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/vessel"
)

// VesselRepository defines the persistence contract for vessels. IMO number
// uniqueness is enforced by the datastore; Add surfaces a duplicate as a
// value error, not a raw driver failure.
type VesselRepository interface {
	// Add persists a new vessel.
	Add(ctx context.Context, aggregate *vessel.Vessel) error

	// Update persists changes to an existing vessel.
	Update(ctx context.Context, aggregate *vessel.Vessel) error

	// Get retrieves a vessel by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vessel.Vessel, error)
}
