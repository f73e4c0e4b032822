package chat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/chat"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

func mustConversation(t *testing.T) *chat.Conversation {
	t.Helper()

	c, err := chat.NewConversation(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func TestConversationRoster(t *testing.T) {
	t.Run("added user is active", func(t *testing.T) {
		c := mustConversation(t)
		userID := kernel.NewUUID()

		require.NoError(t, c.AddParticipant(userID, time.Now()))

		assert.True(t, c.IsActiveParticipant(userID))
		assert.False(t, c.IsActiveParticipant(kernel.NewUUID()))
	})

	t.Run("cannot add active user twice", func(t *testing.T) {
		c := mustConversation(t)
		userID := kernel.NewUUID()
		require.NoError(t, c.AddParticipant(userID, time.Now()))

		err := c.AddParticipant(userID, time.Now())
		require.ErrorIs(t, err, chat.ErrParticipantAlreadyActive)
	})

	t.Run("leaving closes the roster entry", func(t *testing.T) {
		c := mustConversation(t)
		userID := kernel.NewUUID()
		require.NoError(t, c.AddParticipant(userID, time.Now()))

		require.NoError(t, c.RemoveParticipant(userID, time.Now()))

		assert.False(t, c.IsActiveParticipant(userID))
		require.Len(t, c.Participants(), 1)
		assert.NotNil(t, c.Participants()[0].LeftAt())
	})

	t.Run("user can rejoin after leaving", func(t *testing.T) {
		c := mustConversation(t)
		userID := kernel.NewUUID()
		require.NoError(t, c.AddParticipant(userID, time.Now()))
		require.NoError(t, c.RemoveParticipant(userID, time.Now()))

		require.NoError(t, c.AddParticipant(userID, time.Now()))

		assert.True(t, c.IsActiveParticipant(userID))
		assert.Len(t, c.Participants(), 2)
	})
}

func TestComposeMessage(t *testing.T) {
	t.Run("active participant posts", func(t *testing.T) {
		c := mustConversation(t)
		author := kernel.NewUUID()
		require.NoError(t, c.AddParticipant(author, time.Now()))

		msg, err := c.ComposeMessage(kernel.NewUUID(), author, "ETA moved to 0600", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "ETA moved to 0600", msg.Body())
		assert.True(t, msg.AuthorID().IsEqual(author))
	})

	t.Run("outsider cannot post", func(t *testing.T) {
		c := mustConversation(t)

		_, err := c.ComposeMessage(kernel.NewUUID(), kernel.NewUUID(), "hello", time.Now())
		require.ErrorIs(t, err, chat.ErrParticipantNotActive)
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		c := mustConversation(t)
		author := kernel.NewUUID()
		require.NoError(t, c.AddParticipant(author, time.Now()))

		_, err := c.ComposeMessage(kernel.NewUUID(), author, "   ", time.Now())
		require.ErrorIs(t, err, chat.ErrMessageBodyIsRequired)
	})
}
