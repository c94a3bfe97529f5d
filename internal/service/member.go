package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"github.com/quickshare/rooms/internal/realtime"
	"github.com/quickshare/rooms/internal/repository"
	"github.com/sirupsen/logrus"
)

// MemberService tracks who has joined a room. Rows are never pruned on
// disconnect: the roster records everyone who was here this lifetime.
type MemberService struct {
	members  repository.MemberRepository
	roomSvc  *RoomService
	bus      realtime.Bus
	activity *ActivityService
}

func NewMemberService(
	members repository.MemberRepository,
	roomSvc *RoomService,
	bus realtime.Bus,
	activity *ActivityService,
) *MemberService {
	return &MemberService{members: members, roomSvc: roomSvc, bus: bus, activity: activity}
}

// Join upserts the (room, session) membership. Joining twice refreshes
// the display name and nothing else.
func (s *MemberService) Join(ctx context.Context, roomID, sessionID uuid.UUID, displayName string) (*models.Member, error) {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "session_id": sessionID})

	if _, err := s.roomSvc.GetActive(ctx, roomID); err != nil {
		return nil, err
	}

	member := &models.Member{
		RoomID:      roomID,
		SessionID:   sessionID,
		DisplayName: displayName,
	}
	if err := s.members.UpsertMember(ctx, member); err != nil {
		logCtx.WithError(err).Error("Failed to upsert member")
		return nil, err
	}

	s.activity.Record(ctx, roomID, models.ActionMemberJoined, displayName,
		fmt.Sprintf("%s joined the room", displayName))

	event, err := realtime.NewEvent(realtime.ChangeInsert, realtime.ResourceMembers, roomID, member)
	if err == nil {
		err = s.bus.Publish(ctx, event)
	}
	if err != nil {
		logCtx.WithError(err).Warn("Failed to publish membership event")
	}

	return member, nil
}

// Roster lists every member row of the room's current lifetime.
func (s *MemberService) Roster(ctx context.Context, roomID uuid.UUID) ([]models.Member, error) {
	return s.members.ListMembers(ctx, roomID)
}
