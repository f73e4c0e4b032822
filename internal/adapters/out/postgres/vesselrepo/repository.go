package vesselrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/vessel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// GormVesselRepository implements VesselRepository using GORM.
type GormVesselRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVesselRepository creates a new GORM vessel repository.
func NewGormVesselRepository(db *gorm.DB, tracker aggregateTracker) *GormVesselRepository {
	return &GormVesselRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vessel. A duplicate IMO number surfaces as a value error
// on the imoNumber parameter rather than a raw driver failure.
func (r *GormVesselRepository) Add(ctx context.Context, aggregate *vessel.Vessel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapUniqueViolation(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing vessel.
func (r *GormVesselRepository) Update(ctx context.Context, aggregate *vessel.Vessel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VesselDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return mapUniqueViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vessel by ID.
func (r *GormVesselRepository) Get(ctx context.Context, id kernel.UUID) (*vessel.Vessel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VesselDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vesselId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errs.NewValueIsInvalidErrorWithCause("imoNumber", err)
	}
	return err
}
