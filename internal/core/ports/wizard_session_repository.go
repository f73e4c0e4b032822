package ports

import (
	"context"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/wizard"
)

// WizardSessionRepository defines the persistence contract for order wizard
// sessions.
type WizardSessionRepository interface {
	// Add persists a new session.
	Add(ctx context.Context, aggregate *wizard.Session) error

	// Update persists draft changes or completion.
	Update(ctx context.Context, aggregate *wizard.Session) error

	// Get retrieves a session by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*wizard.Session, error)
}
