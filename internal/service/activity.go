package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"github.com/quickshare/rooms/internal/realtime"
	"github.com/quickshare/rooms/internal/repository"
	"github.com/sirupsen/logrus"
)

// DefaultActivityLimit caps the feed; the client keeps the same cap when
// prepending live entries.
const DefaultActivityLimit = 50

// ActivityService keeps the append-only event log of lifecycle actions.
type ActivityService struct {
	repo repository.ActivityRepository
	bus  realtime.Bus
}

func NewActivityService(repo repository.ActivityRepository, bus realtime.Bus) *ActivityService {
	return &ActivityService{repo: repo, bus: bus}
}

// Record appends an entry and fans it out. Failures are logged, never
// returned: an activity entry must not block the action it describes.
func (s *ActivityService) Record(ctx context.Context, roomID uuid.UUID, action models.ActivityAction, actorName, details string) {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "action": action})

	event := &models.ActivityEvent{
		RoomID:    roomID,
		Action:    action,
		ActorName: actorName,
		Details:   details,
	}
	if err := s.repo.AppendActivity(ctx, event); err != nil {
		logCtx.WithError(err).Warn("Failed to append activity entry")
		return
	}

	busEvent, err := realtime.NewEvent(realtime.ChangeInsert, realtime.ResourceActivity, roomID, event)
	if err != nil {
		logCtx.WithError(err).Warn("Failed to encode activity event")
		return
	}
	if err := s.bus.Publish(ctx, busEvent); err != nil {
		logCtx.WithError(err).Warn("Failed to publish activity event")
	}
}

// List returns the newest entries first, at most limit of them.
// A non-positive or oversized limit falls back to DefaultActivityLimit.
func (s *ActivityService) List(ctx context.Context, roomID uuid.UUID, limit int) ([]models.ActivityEvent, error) {
	if limit <= 0 || limit > DefaultActivityLimit {
		limit = DefaultActivityLimit
	}
	return s.repo.ListActivity(ctx, roomID, limit)
}
