package models

import (
	"github.com/google/uuid"
	"time"
)

// Member is one (room, session) pair. A session joining twice only
// refreshes its display name, never a second row.
type Member struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RoomID      uuid.UUID `gorm:"not null;uniqueIndex:idx_room_session" json:"room_id"`
	SessionID   uuid.UUID `gorm:"not null;uniqueIndex:idx_room_session" json:"session_id"`
	DisplayName string    `gorm:"not null" json:"display_name"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
