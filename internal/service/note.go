package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"github.com/quickshare/rooms/internal/realtime"
	"github.com/quickshare/rooms/internal/repository"
	"github.com/sirupsen/logrus"
)

// NoteService synchronizes the room's single shared document. Writes are
// whole-document overwrites: the most recently persisted write wins, and
// concurrent editors can lose interleaved keystrokes. That is the stated
// policy, not an accident.
type NoteService struct {
	notes   repository.NoteRepository
	roomSvc *RoomService
	bus     realtime.Bus
}

func NewNoteService(notes repository.NoteRepository, roomSvc *RoomService, bus realtime.Bus) *NoteService {
	return &NoteService{notes: notes, roomSvc: roomSvc, bus: bus}
}

// Get returns the current document. Reading never mutates.
func (s *NoteService) Get(ctx context.Context, roomID uuid.UUID) (*models.SharedNote, error) {
	if _, err := s.roomSvc.GetActive(ctx, roomID); err != nil {
		return nil, err
	}
	note, err := s.notes.FindNoteByRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return note, nil
}

// Update replaces the document and fans the full new content out to every
// subscriber, including the writer. Subscribers apply it unconditionally.
func (s *NoteService) Update(ctx context.Context, roomID uuid.UUID, content string) (*models.SharedNote, error) {
	logCtx := logrus.WithField("room_id", roomID)

	if _, err := s.roomSvc.GetActive(ctx, roomID); err != nil {
		return nil, err
	}

	note, err := s.notes.ReplaceNote(ctx, roomID, content)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, ErrRoomNotFound
		}
		logCtx.WithError(err).Error("Failed to replace note content")
		return nil, err
	}

	event, err := realtime.NewEvent(realtime.ChangeUpdate, realtime.ResourceNotes, roomID, note)
	if err == nil {
		err = s.bus.Publish(ctx, event)
	}
	if err != nil {
		logCtx.WithError(err).Warn("Failed to publish note event")
	}

	return note, nil
}
