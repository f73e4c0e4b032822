package actorrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// GormActorRepository implements ActorRepository using GORM.
type GormActorRepository struct {
	db *gorm.DB
}

// NewGormActorRepository creates a new GORM actor repository.
func NewGormActorRepository(db *gorm.DB) *GormActorRepository {
	return &GormActorRepository{db: db}
}

// Get retrieves an actor with all organization memberships.
func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actorId", id.String())
		}
		return nil, err
	}

	var memberships []MembershipDTO
	err := r.db.WithContext(ctx).
		Order("organization_id").
		Find(&memberships, "actor_id = ?", id.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, memberships)
}
