package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoomLifecycleScenario walks one room from creation to teardown the
// way a client session would.
func TestRoomLifecycleScenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	creator := uuid.New()

	room, err := f.rooms.Create(ctx, creator, "Alice")
	require.NoError(t, err)
	require.Len(t, room.Code, 6)

	// Alice joins via the code she just got back.
	found, err := f.rooms.GetByCode(ctx, room.Code)
	require.NoError(t, err)
	member, err := f.members.Join(ctx, found.ID, creator, "Alice")
	require.NoError(t, err)

	roster, err := f.members.Roster(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, member.SessionID, roster[0].SessionID)
	assert.Equal(t, "Alice", roster[0].DisplayName)

	_, err = f.messages.Send(ctx, room.ID, creator, "Alice", "hello")
	require.NoError(t, err)
	msgs, err := f.messages.List(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, creator, msgs[0].SessionID)

	payload := bytes.Repeat([]byte("a"), 10*1024*1024)
	_, err = f.files.Upload(ctx, room.ID, "Alice", "slides.pdf", "application/pdf",
		int64(len(payload)), bytes.NewReader(payload))
	require.NoError(t, err)
	files, err := f.files.List(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, int64(10*1024*1024), files[0].SizeBytes)

	feed, err := f.activity.List(ctx, room.ID, DefaultActivityLimit)
	require.NoError(t, err)
	actions := make([]models.ActivityAction, 0, len(feed))
	for _, e := range feed {
		actions = append(actions, e.Action)
	}
	assert.Equal(t, []models.ActivityAction{
		models.ActionFileUploaded,
		models.ActionMemberJoined,
		models.ActionRoomCreated,
	}, actions)

	require.NoError(t, f.rooms.Close(ctx, room.ID, creator))

	msgs, err = f.messages.List(ctx, room.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)
	files, err = f.files.List(ctx, room.ID)
	require.NoError(t, err)
	assert.Empty(t, files)

	closed, err := f.rooms.GetByCode(ctx, room.Code)
	require.NoError(t, err)
	assert.False(t, closed.IsActive)

	_, err = f.members.Join(ctx, room.ID, uuid.New(), "Bob")
	assert.ErrorIs(t, err, ErrRoomClosed)
}
