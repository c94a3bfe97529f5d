// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"github.com/stretchr/testify/mock"
)

type RoomRepository struct {
	mock.Mock
}

func (m *RoomRepository) CreateRoomWithNote(ctx context.Context, room *models.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *RoomRepository) FindRoomByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	args := m.Called(ctx, id)
	if room, ok := args.Get(0).(*models.Room); ok {
		return room, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RoomRepository) FindRoomByCode(ctx context.Context, code string) (*models.Room, error) {
	args := m.Called(ctx, code)
	if room, ok := args.Get(0).(*models.Room); ok {
		return room, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RoomRepository) CodeInUse(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *RoomRepository) TeardownRoom(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) UpsertMember(ctx context.Context, member *models.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MemberRepository) ListMembers(ctx context.Context, roomID uuid.UUID) ([]models.Member, error) {
	args := m.Called(ctx, roomID)
	if members, ok := args.Get(0).([]models.Member); ok {
		return members, args.Error(1)
	}
	return nil, args.Error(1)
}

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) SaveMessage(ctx context.Context, msg *models.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepository) ListMessages(ctx context.Context, roomID uuid.UUID) ([]models.Message, error) {
	args := m.Called(ctx, roomID)
	if messages, ok := args.Get(0).([]models.Message); ok {
		return messages, args.Error(1)
	}
	return nil, args.Error(1)
}

type FileRepository struct {
	mock.Mock
}

func (m *FileRepository) SaveFile(ctx context.Context, file *models.FileAsset) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *FileRepository) FindFileByID(ctx context.Context, id uuid.UUID) (*models.FileAsset, error) {
	args := m.Called(ctx, id)
	if file, ok := args.Get(0).(*models.FileAsset); ok {
		return file, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *FileRepository) ListFiles(ctx context.Context, roomID uuid.UUID) ([]models.FileAsset, error) {
	args := m.Called(ctx, roomID)
	if files, ok := args.Get(0).([]models.FileAsset); ok {
		return files, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *FileRepository) ListBlobPaths(ctx context.Context, roomID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, roomID)
	if paths, ok := args.Get(0).([]string); ok {
		return paths, args.Error(1)
	}
	return nil, args.Error(1)
}

type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) FindNoteByRoom(ctx context.Context, roomID uuid.UUID) (*models.SharedNote, error) {
	args := m.Called(ctx, roomID)
	if note, ok := args.Get(0).(*models.SharedNote); ok {
		return note, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteRepository) ReplaceNote(ctx context.Context, roomID uuid.UUID, content string) (*models.SharedNote, error) {
	args := m.Called(ctx, roomID, content)
	if note, ok := args.Get(0).(*models.SharedNote); ok {
		return note, args.Error(1)
	}
	return nil, args.Error(1)
}

type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) AppendActivity(ctx context.Context, event *models.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *ActivityRepository) ListActivity(ctx context.Context, roomID uuid.UUID, limit int) ([]models.ActivityEvent, error) {
	args := m.Called(ctx, roomID, limit)
	if events, ok := args.Get(0).([]models.ActivityEvent); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}
