package wizardrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/wizard"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// GormWizardSessionRepository implements WizardSessionRepository using GORM.
type GormWizardSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWizardSessionRepository creates a new GORM wizard session repository.
func NewGormWizardSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormWizardSessionRepository {
	return &GormWizardSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new session and its service picks.
func (r *GormWizardSessionRepository) Add(ctx context.Context, aggregate *wizard.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, picks := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.writePicks(ctx, picks); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves draft changes or completion. The pick rows are replaced
// wholesale; drafts are small and the session is single-writer by ownership.
func (r *GormWizardSessionRepository) Update(ctx context.Context, aggregate *wizard.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, picks := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SessionDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"step":       dto.Step,
			"vessel_id":  dto.VesselID,
			"port_id":    dto.PortID,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	err := r.db.WithContext(ctx).
		Where("session_id = ?", dto.ID).
		Delete(&SessionServiceDTO{}).Error
	if err != nil {
		return err
	}
	if err = r.writePicks(ctx, picks); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a session by ID.
func (r *GormWizardSessionRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wizardSessionId", id.String())
		}
		return nil, err
	}

	var picks []SessionServiceDTO
	err := r.db.WithContext(ctx).
		Order("service_id").
		Find(&picks, "session_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, picks)
}

func (r *GormWizardSessionRepository) writePicks(ctx context.Context, picks []SessionServiceDTO) error {
	for _, pick := range picks {
		if err := r.db.WithContext(ctx).Create(&pick).Error; err != nil {
			return err
		}
	}
	return nil
}
