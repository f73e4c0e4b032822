package joinrequestrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/joinrequest"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// GormJoinRequestRepository implements JoinRequestRepository using GORM.
type GormJoinRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJoinRequestRepository creates a new GORM join request repository.
func NewGormJoinRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormJoinRequestRepository {
	return &GormJoinRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new join request.
func (r *GormJoinRequestRepository) Add(ctx context.Context, aggregate *joinrequest.JoinRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a review or withdrawal.
func (r *GormJoinRequestRepository) Update(ctx context.Context, aggregate *joinrequest.JoinRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&JoinRequestDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":      dto.Status,
			"reviewed_by": dto.ReviewedBy,
			"reviewed_at": dto.ReviewedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a join request by ID.
func (r *GormJoinRequestRepository) Get(ctx context.Context, id kernel.UUID) (*joinrequest.JoinRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JoinRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("joinRequestId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingForOrganization retrieves the organization's open requests.
func (r *GormJoinRequestRepository) GetPendingForOrganization(
	ctx context.Context,
	orgID kernel.UUID,
) ([]*joinrequest.JoinRequest, error) {
	if err := orgID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JoinRequestDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "org_id = ? AND status = ?",
			orgID.Bytes(), joinrequest.StatusPending.String()).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*joinrequest.JoinRequest, 0, len(dtos))
	for _, dto := range dtos {
		req, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		requests = append(requests, req)
	}

	return requests, nil
}
