package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
)

// RoomRepository owns the Room rows. A room's code is only reserved while
// the room is active; CodeInUse ignores closed rooms so codes can be
// reused after teardown.
type RoomRepository interface {
	// CreateRoomWithNote inserts the room and its empty shared note in one
	// transaction, so a room can never exist without its note. Returns
	// ErrDuplicateCode when another active room committed the same code
	// first; callers regenerate and retry.
	CreateRoomWithNote(ctx context.Context, room *models.Room) error

	FindRoomByID(ctx context.Context, id uuid.UUID) (*models.Room, error)
	// FindRoomByCode returns the newest room carrying the code, active or
	// not, so callers can tell a closed room from one that never existed.
	FindRoomByCode(ctx context.Context, code string) (*models.Room, error)
	CodeInUse(ctx context.Context, code string) (bool, error)

	// TeardownRoom deletes every child row of the room and flips IsActive
	// to false, in one transaction. The Room row itself survives as a
	// tombstone so lookups can distinguish "closed" from "never existed".
	TeardownRoom(ctx context.Context, id uuid.UUID) error
}

type MemberRepository interface {
	// UpsertMember inserts the (room, session) row or, if it already
	// exists, refreshes the display name. Never creates duplicates.
	UpsertMember(ctx context.Context, member *models.Member) error
	ListMembers(ctx context.Context, roomID uuid.UUID) ([]models.Member, error)
}

type MessageRepository interface {
	SaveMessage(ctx context.Context, msg *models.Message) error
	// ListMessages returns messages ascending by creation time.
	ListMessages(ctx context.Context, roomID uuid.UUID) ([]models.Message, error)
}

type FileRepository interface {
	SaveFile(ctx context.Context, file *models.FileAsset) error
	FindFileByID(ctx context.Context, id uuid.UUID) (*models.FileAsset, error)
	// ListFiles returns files newest first.
	ListFiles(ctx context.Context, roomID uuid.UUID) ([]models.FileAsset, error)
	// ListBlobPaths returns the storage paths of every file in the room.
	ListBlobPaths(ctx context.Context, roomID uuid.UUID) ([]string, error)
}

type NoteRepository interface {
	FindNoteByRoom(ctx context.Context, roomID uuid.UUID) (*models.SharedNote, error)
	// ReplaceNote overwrites the note content wholesale and refreshes
	// UpdatedAt. Last persisted write wins.
	ReplaceNote(ctx context.Context, roomID uuid.UUID, content string) (*models.SharedNote, error)
}

type ActivityRepository interface {
	AppendActivity(ctx context.Context, event *models.ActivityEvent) error
	// ListActivity returns the most recent limit entries, newest first.
	ListActivity(ctx context.Context, roomID uuid.UUID, limit int) ([]models.ActivityEvent, error)
}
