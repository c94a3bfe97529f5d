package models

import (
	"github.com/google/uuid"
	"time"
)

// ActivityAction is the closed set of things the activity feed can report.
type ActivityAction string

const (
	ActionRoomCreated  ActivityAction = "room_created"
	ActionMemberJoined ActivityAction = "member_joined"
	ActionFileUploaded ActivityAction = "file_uploaded"
	ActionRoomClosed   ActivityAction = "room_closed"
)

var actionLabels = map[ActivityAction]string{
	ActionRoomCreated:  "Room created",
	ActionMemberJoined: "Member joined",
	ActionFileUploaded: "File uploaded",
	ActionRoomClosed:   "Room closed",
}

// Label returns a human-readable name for the action, or the raw value
// for actions recorded by a newer version of the server.
func (a ActivityAction) Label() string {
	if l, ok := actionLabels[a]; ok {
		return l
	}
	return string(a)
}

func (a ActivityAction) Valid() bool {
	_, ok := actionLabels[a]
	return ok
}

type ActivityEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RoomID    uuid.UUID      `gorm:"not null;index" json:"room_id"`
	Action    ActivityAction `gorm:"not null" json:"action"`
	ActorName string         `json:"actor_name"`
	Details   string         `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}
