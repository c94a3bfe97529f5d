package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	room, err := f.rooms.Create(ctx, uuid.New(), "User 1")
	require.NoError(t, err)

	sub, err := f.bus.Subscribe(ctx, room.ID, realtime.ResourceMessages)
	require.NoError(t, err)

	sender := uuid.New()
	msg, err := f.messages.Send(ctx, room.ID, sender, "User 3", "  hello room  ")
	require.NoError(t, err)
	assert.Equal(t, "hello room", msg.Content)
	assert.Equal(t, sender, msg.SessionID)

	event := recvEvent(t, sub)
	assert.Equal(t, realtime.ChangeInsert, event.Type)
	assert.Contains(t, string(event.Row), "hello room")
}

func TestSendMessageValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	room, err := f.rooms.Create(ctx, uuid.New(), "User 1")
	require.NoError(t, err)

	_, err = f.messages.Send(ctx, room.ID, uuid.New(), "User 3", "")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = f.messages.Send(ctx, room.ID, uuid.New(), "User 3", "   \t\n ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = f.messages.Send(ctx, room.ID, uuid.New(), "User 3", strings.Repeat("x", MaxMessageLength+1))
	assert.ErrorIs(t, err, ErrMessageTooLong)

	// The limit itself is fine.
	_, err = f.messages.Send(ctx, room.ID, uuid.New(), "User 3", strings.Repeat("x", MaxMessageLength))
	assert.NoError(t, err)

	// The limit counts characters, not bytes: 1000 two-byte runes pass,
	// 1001 do not.
	_, err = f.messages.Send(ctx, room.ID, uuid.New(), "User 3", strings.Repeat("é", MaxMessageLength))
	assert.NoError(t, err)
	_, err = f.messages.Send(ctx, room.ID, uuid.New(), "User 3", strings.Repeat("é", MaxMessageLength+1))
	assert.ErrorIs(t, err, ErrMessageTooLong)

	// Nothing from the rejected sends was persisted.
	msgs, err := f.messages.List(ctx, room.ID)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestSendMessageClosedRoom(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	creator := uuid.New()
	room, err := f.rooms.Create(ctx, creator, "User 1")
	require.NoError(t, err)
	require.NoError(t, f.rooms.Close(ctx, room.ID, creator))

	_, err = f.messages.Send(ctx, room.ID, creator, "User 1", "too late")
	assert.ErrorIs(t, err, ErrRoomClosed)
}

func TestListMessagesOrdering(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	room, err := f.rooms.Create(ctx, uuid.New(), "User 1")
	require.NoError(t, err)

	sender := uuid.New()
	for _, content := range []string{"first", "second", "third"} {
		_, err := f.messages.Send(ctx, room.ID, sender, "User 1", content)
		require.NoError(t, err)
	}

	msgs, err := f.messages.List(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "third", msgs[2].Content)
}
