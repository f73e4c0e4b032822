package chatrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/chat"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// GormConversationRepository implements ConversationRepository using GORM.
type GormConversationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormConversationRepository creates a new GORM conversation repository.
func NewGormConversationRepository(db *gorm.DB, tracker aggregateTracker) *GormConversationRepository {
	return &GormConversationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new conversation and its initial roster.
func (r *GormConversationRepository) Add(ctx context.Context, aggregate *chat.Conversation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, participants := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	for _, p := range participants {
		if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists roster changes by replacing the roster rows. Messages are
// untouched; they live in their own append-only table.
func (r *GormConversationRepository) Update(ctx context.Context, aggregate *chat.Conversation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, participants := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", dto.ID).
		Delete(&ParticipantDTO{}).Error
	if err != nil {
		return err
	}
	for _, p := range participants {
		if err = r.db.WithContext(ctx).Create(&p).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderGroup retrieves the conversation attached to an order group.
func (r *GormConversationRepository) GetByOrderGroup(
	ctx context.Context,
	orderGroupID kernel.UUID,
) (*chat.Conversation, error) {
	if err := orderGroupID.Validate(); err != nil {
		return nil, err
	}

	var dto ConversationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_group_id = ?", orderGroupID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderGroupId", orderGroupID.String())
		}
		return nil, err
	}

	var participants []ParticipantDTO
	err = r.db.WithContext(ctx).
		Order("joined_at, id").
		Find(&participants, "conversation_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, participants)
}

// AddMessage appends a message to the conversation's history.
func (r *GormConversationRepository) AddMessage(
	ctx context.Context,
	conversationID kernel.UUID,
	msg chat.Message,
) error {
	if err := conversationID.Validate(); err != nil {
		return err
	}

	dto := messageFromDomain(conversationID, msg)
	return r.db.WithContext(ctx).Create(&dto).Error
}
