package models

import (
	"github.com/google/uuid"
	"time"
)

// SharedNote is the room's single collaborative document. It is created
// together with the room and only ever replaced wholesale: the most
// recently persisted write wins.
type SharedNote struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RoomID    uuid.UUID `gorm:"not null;uniqueIndex" json:"room_id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
