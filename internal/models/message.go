package models

import (
	"github.com/google/uuid"
	"time"
)

type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RoomID     uuid.UUID `gorm:"not null;index" json:"room_id"`
	SessionID  uuid.UUID `gorm:"not null" json:"session_id"`
	SenderName string    `gorm:"not null" json:"sender_name"`
	Content    string    `gorm:"size:1000;not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
