// Package chat provides the ChatConversation aggregate. A conversation is
// attached to an order group and carries the coordination thread between the
// placing organization and the fulfilling agency.
package chat

import (
	"errors"
	"strings"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

var (
	// ErrConversationIsNotConstructed is returned when using an improperly
	// initialized Conversation.
	ErrConversationIsNotConstructed = errors.New(
		"Conversation must be created via NewConversation constructor")

	// ErrParticipantAlreadyActive is returned when adding a user who is
	// already an active participant.
	ErrParticipantAlreadyActive = errs.NewValueIsInvalidError(
		"user is already an active participant")

	// ErrParticipantNotActive is returned when a non-participant tries to
	// leave or post.
	ErrParticipantNotActive = errs.NewValueIsInvalidError(
		"user is not an active participant")

	// ErrMessageBodyIsRequired is returned for empty message bodies.
	ErrMessageBodyIsRequired = errs.NewValueIsRequiredError("body")
)

// Participant is a user's membership window in a conversation. A nil leftAt
// means the user is still active.
type Participant struct {
	userID   kernel.UUID
	joinedAt time.Time
	leftAt   *time.Time
}

// UserID returns the participating user.
func (p Participant) UserID() kernel.UUID { return p.userID }

// JoinedAt returns when the user joined the conversation.
func (p Participant) JoinedAt() time.Time { return p.joinedAt }

// LeftAt returns when the user left, nil while active.
func (p Participant) LeftAt() *time.Time { return p.leftAt }

// IsActive reports whether the participant has not left.
func (p Participant) IsActive() bool { return p.leftAt == nil }

// Message is a single entry in a conversation.
type Message struct {
	id       kernel.UUID
	authorID kernel.UUID
	body     string
	sentAt   time.Time
}

// ID returns the message's unique identifier.
func (m Message) ID() kernel.UUID { return m.id }

// AuthorID returns the user who posted the message.
func (m Message) AuthorID() kernel.UUID { return m.authorID }

// Body returns the message text.
func (m Message) Body() string { return m.body }

// SentAt returns when the message was posted.
func (m Message) SentAt() time.Time { return m.sentAt }

// Conversation is the chat thread attached to an order group.
type Conversation struct {
	id           kernel.UUID
	orderGroupID kernel.UUID
	participants []Participant

	isConstructed bool
}

// NewConversation creates an empty conversation for an order group.
func NewConversation(id, orderGroupID kernel.UUID) (*Conversation, error) {
	c := &Conversation{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderGroupID(orderGroupID),
	); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreConversation reconstructs a conversation and its roster from
// persistent storage.
func RestoreConversation(id, orderGroupID kernel.UUID, participants []Participant) (*Conversation, error) {
	c, err := NewConversation(id, orderGroupID)
	if err != nil {
		return nil, err
	}
	c.participants = participants
	return c, nil
}

// RestoreParticipant reconstructs a roster entry from persistent storage.
func RestoreParticipant(userID kernel.UUID, joinedAt time.Time, leftAt *time.Time) Participant {
	return Participant{userID: userID, joinedAt: joinedAt, leftAt: leftAt}
}

// Validate ensures the conversation was created through a constructor.
func (c *Conversation) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConversationIsNotConstructed
	}
	return nil
}

// ID returns the conversation's unique identifier.
func (c *Conversation) ID() kernel.UUID { return c.id }

// OrderGroupID returns the order group the conversation belongs to.
func (c *Conversation) OrderGroupID() kernel.UUID { return c.orderGroupID }

// Participants returns a copy of the full roster, including users who left.
func (c *Conversation) Participants() []Participant {
	out := make([]Participant, len(c.participants))
	copy(out, c.participants)
	return out
}

// IsActiveParticipant reports whether the user is currently in the
// conversation. Users who left and rejoined count through their newest entry.
func (c *Conversation) IsActiveParticipant(userID kernel.UUID) bool {
	for i := len(c.participants) - 1; i >= 0; i-- {
		if c.participants[i].userID.IsEqual(userID) {
			return c.participants[i].IsActive()
		}
	}
	return false
}

// AddParticipant appends a roster entry for the user.
func (c *Conversation) AddParticipant(userID kernel.UUID, now time.Time) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if c.IsActiveParticipant(userID) {
		return ErrParticipantAlreadyActive
	}
	c.participants = append(c.participants, Participant{userID: userID, joinedAt: now})
	return nil
}

// RemoveParticipant closes the user's newest roster entry.
func (c *Conversation) RemoveParticipant(userID kernel.UUID, now time.Time) error {
	for i := len(c.participants) - 1; i >= 0; i-- {
		if c.participants[i].userID.IsEqual(userID) && c.participants[i].IsActive() {
			c.participants[i].leftAt = &now
			return nil
		}
	}
	return ErrParticipantNotActive
}

// ComposeMessage builds a message from an active participant. The caller
// persists the message through the repository.
func (c *Conversation) ComposeMessage(id, authorID kernel.UUID, body string, now time.Time) (Message, error) {
	if !c.IsActiveParticipant(authorID) {
		return Message{}, ErrParticipantNotActive
	}
	if strings.TrimSpace(body) == "" {
		return Message{}, ErrMessageBodyIsRequired
	}
	if err := id.Validate(); err != nil {
		return Message{}, err
	}
	return Message{id: id, authorID: authorID, body: body, sentAt: now}, nil
}

func (c *Conversation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Conversation) setOrderGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderGroupID")
	}
	c.orderGroupID = id
	return nil
}
