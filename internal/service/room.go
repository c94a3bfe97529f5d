package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"github.com/quickshare/rooms/internal/realtime"
	"github.com/quickshare/rooms/internal/repository"
	"github.com/quickshare/rooms/internal/storage"
	"github.com/sirupsen/logrus"
)

// RoomService is the room registry and teardown coordinator: it mints
// codes, resolves them, and executes the cascading close.
type RoomService struct {
	rooms    repository.RoomRepository
	files    repository.FileRepository
	blobs    storage.BlobStore
	bus      realtime.Bus
	activity *ActivityService
}

func NewRoomService(
	rooms repository.RoomRepository,
	files repository.FileRepository,
	blobs storage.BlobStore,
	bus realtime.Bus,
	activity *ActivityService,
) *RoomService {
	return &RoomService{rooms: rooms, files: files, blobs: blobs, bus: bus, activity: activity}
}

// Create mints a unique 6-character code, creates the room together with
// its empty shared note, and logs room_created. The code check before the
// insert is an optimization only; the partial unique index on active
// codes is what actually holds the invariant, so a lost race surfaces as
// ErrDuplicateCode and draws a fresh code.
func (s *RoomService) Create(ctx context.Context, creatorSessionID uuid.UUID, creatorName string) (*models.Room, error) {
	logCtx := logrus.WithField("creator_session_id", creatorSessionID)

	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := generateRoomCode()
		if err != nil {
			return nil, err
		}
		inUse, err := s.rooms.CodeInUse(ctx, code)
		if err != nil {
			return nil, err
		}
		if inUse {
			logCtx.WithField("code", code).
				Warnf("Generated room code already in use, retrying (attempt %d)", attempt+1)
			continue
		}

		room := &models.Room{
			Code:             code,
			CreatorSessionID: creatorSessionID,
			IsActive:         true,
		}
		err = s.rooms.CreateRoomWithNote(ctx, room)
		if errors.Is(err, repository.ErrDuplicateCode) {
			logCtx.WithField("code", code).
				Warnf("Lost room code race, retrying (attempt %d)", attempt+1)
			continue
		}
		if err != nil {
			logCtx.WithError(err).Error("Failed to create room")
			return nil, err
		}

		s.activity.Record(ctx, room.ID, models.ActionRoomCreated, creatorName, "Room was created")

		logCtx.WithFields(logrus.Fields{"room_id": room.ID, "code": code}).Info("Room created")
		return room, nil
	}

	logCtx.Error("Failed to generate unique room code")
	return nil, ErrCodeExhausted
}

// GetByCode resolves a code to its newest room. The caller inspects
// IsActive to distinguish a live room from a closed one.
func (s *RoomService) GetByCode(ctx context.Context, code string) (*models.Room, error) {
	code, err := NormalizeCode(code)
	if err != nil {
		return nil, err
	}
	room, err := s.rooms.FindRoomByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// GetActive loads the room by id and fails with ErrRoomClosed if it has
// been torn down. Mutating operations call this first.
func (s *RoomService) GetActive(ctx context.Context, roomID uuid.UUID) (*models.Room, error) {
	room, err := s.rooms.FindRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if !room.IsActive {
		return nil, ErrRoomClosed
	}
	return room, nil
}

// Close tears the room down: only the creator may close, and a second
// close of an already-closed room is a no-op once past that check.
//
// Teardown order is deliberate: blobs first (best-effort, per-path
// failures logged and skipped), then the row cascade and deactivation,
// then the terminal room event. Row deactivation is authoritative for
// access control; a crash mid-way can orphan blobs, which is accepted.
func (s *RoomService) Close(ctx context.Context, roomID, requesterSessionID uuid.UUID) error {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "requester": requesterSessionID})

	room, err := s.rooms.FindRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	if room.CreatorSessionID != requesterSessionID {
		return ErrUnauthorized
	}
	if !room.IsActive {
		return nil
	}

	// Logged before the cascade so live activity tails see it; the row
	// itself is purged along with everything else.
	s.activity.Record(ctx, roomID, models.ActionRoomClosed, "", "Room was closed, all data deleted")

	paths, err := s.files.ListBlobPaths(ctx, roomID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to enumerate blobs for teardown")
		return err
	}
	for _, res := range s.blobs.Remove(ctx, paths) {
		if res.Err != nil {
			logCtx.WithError(res.Err).WithField("blob_path", res.Path).
				Warn("Failed to delete blob during teardown, continuing")
		}
	}

	if err := s.rooms.TeardownRoom(ctx, roomID); err != nil {
		logCtx.WithError(err).Error("Failed to purge room rows")
		return err
	}
	room.IsActive = false

	event, err := realtime.NewEvent(realtime.ChangeUpdate, realtime.ResourceRoom, roomID, room)
	if err == nil {
		err = s.bus.Publish(ctx, event)
	}
	if err != nil {
		logCtx.WithError(err).Warn("Failed to publish terminal room event")
	}

	logCtx.Info("Room closed and torn down")
	return nil
}
