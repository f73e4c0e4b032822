package ports

import (
	"context"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/chat"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

// ConversationRepository defines the persistence contract for order group
// chat threads. Messages are append-only; roster changes flow through the
// aggregate and are persisted by Update.
type ConversationRepository interface {
	// Add persists a new conversation and its initial roster.
	Add(ctx context.Context, aggregate *chat.Conversation) error

	// Update persists roster changes.
	Update(ctx context.Context, aggregate *chat.Conversation) error

	// GetByOrderGroup retrieves the conversation attached to an order group.
	GetByOrderGroup(ctx context.Context, orderGroupID kernel.UUID) (*chat.Conversation, error)

	// AddMessage appends a message to the conversation's history.
	AddMessage(ctx context.Context, conversationID kernel.UUID, msg chat.Message) error
}
