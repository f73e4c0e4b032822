// Package chatrepo provides data transfer objects and mapping functions for
// order group conversation persistence. The roster is versioned by rows: a
// rejoin creates a fresh row instead of clearing the old leave mark.
package chatrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/chat"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

// ConversationDTO represents the database structure for conversations.
type ConversationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	OrderGroupID uuid.UUID `gorm:"type:uuid;uniqueIndex;column:order_group_id"`
}

// TableName specifies the database table name for conversations.
func (ConversationDTO) TableName() string {
	return "conversations"
}

// ParticipantDTO represents one roster entry. A user appears once per
// join/leave cycle, ordered by joined_at.
type ParticipantDTO struct {
	ID             int64      `gorm:"primaryKey;autoIncrement;column:id"`
	ConversationID uuid.UUID  `gorm:"type:uuid;index;column:conversation_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;column:user_id"`
	JoinedAt       time.Time  `gorm:"column:joined_at"`
	LeftAt         *time.Time `gorm:"column:left_at"`
}

// TableName specifies the database table name for roster entries.
func (ParticipantDTO) TableName() string {
	return "conversation_participants"
}

// MessageDTO represents one message in a conversation's append-only history.
type MessageDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	ConversationID uuid.UUID `gorm:"type:uuid;index;column:conversation_id"`
	AuthorID       uuid.UUID `gorm:"type:uuid;column:author_id"`
	Body           string    `gorm:"column:body"`
	SentAt         time.Time `gorm:"column:sent_at"`
}

// TableName specifies the database table name for messages.
func (MessageDTO) TableName() string {
	return "conversation_messages"
}

func fromDomain(c *chat.Conversation) (ConversationDTO, []ParticipantDTO) {
	dto := ConversationDTO{
		ID:           c.ID().Bytes(),
		OrderGroupID: c.OrderGroupID().Bytes(),
	}

	roster := c.Participants()
	participants := make([]ParticipantDTO, 0, len(roster))
	for _, p := range roster {
		participants = append(participants, ParticipantDTO{
			ConversationID: c.ID().Bytes(),
			UserID:         p.UserID().Bytes(),
			JoinedAt:       p.JoinedAt(),
			LeftAt:         p.LeftAt(),
		})
	}

	return dto, participants
}

func toDomain(dto ConversationDTO, participantDTOs []ParticipantDTO) (*chat.Conversation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderGroupID, err := kernel.UUIDFromBytes(dto.OrderGroupID[:])
	if err != nil {
		return nil, err
	}

	participants := make([]chat.Participant, 0, len(participantDTOs))
	for _, p := range participantDTOs {
		userID, uErr := kernel.UUIDFromBytes(p.UserID[:])
		if uErr != nil {
			return nil, uErr
		}
		participants = append(participants, chat.RestoreParticipant(userID, p.JoinedAt, p.LeftAt))
	}

	return chat.RestoreConversation(id, orderGroupID, participants)
}

func messageFromDomain(conversationID kernel.UUID, msg chat.Message) MessageDTO {
	return MessageDTO{
		ID:             msg.ID().Bytes(),
		ConversationID: conversationID.Bytes(),
		AuthorID:       msg.AuthorID().Bytes(),
		Body:           msg.Body(),
		SentAt:         msg.SentAt(),
	}
}
