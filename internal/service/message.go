package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"github.com/quickshare/rooms/internal/realtime"
	"github.com/quickshare/rooms/internal/repository"
	"github.com/sirupsen/logrus"
)

// MaxMessageLength matches the column size; longer content is rejected
// before any write.
const MaxMessageLength = 1000

type MessageService struct {
	messages repository.MessageRepository
	roomSvc  *RoomService
	bus      realtime.Bus
}

func NewMessageService(messages repository.MessageRepository, roomSvc *RoomService, bus realtime.Bus) *MessageService {
	return &MessageService{messages: messages, roomSvc: roomSvc, bus: bus}
}

// Send validates, persists and fans out one chat message. Messages are
// append-only; there is no edit or per-message delete.
func (s *MessageService) Send(ctx context.Context, roomID, sessionID uuid.UUID, senderName, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	// Length is in characters, matching the client-side input limit.
	if utf8.RuneCountInString(content) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	if _, err := s.roomSvc.GetActive(ctx, roomID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		RoomID:     roomID,
		SessionID:  sessionID,
		SenderName: senderName,
		Content:    content,
	}
	if err := s.messages.SaveMessage(ctx, msg); err != nil {
		logrus.WithError(err).WithField("room_id", roomID).Error("Failed to save message")
		return nil, err
	}

	event, err := realtime.NewEvent(realtime.ChangeInsert, realtime.ResourceMessages, roomID, msg)
	if err == nil {
		err = s.bus.Publish(ctx, event)
	}
	if err != nil {
		logrus.WithError(err).WithField("room_id", roomID).Warn("Failed to publish message event")
	}

	return msg, nil
}

// List returns the room's messages ascending by creation time.
func (s *MessageService) List(ctx context.Context, roomID uuid.UUID) ([]models.Message, error) {
	return s.messages.ListMessages(ctx, roomID)
}
