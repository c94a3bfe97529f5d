package models

import (
	"github.com/google/uuid"
	"time"
)

type FileAsset struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RoomID     uuid.UUID `gorm:"not null;index" json:"room_id"`
	FileName   string    `gorm:"not null" json:"file_name"`
	SizeBytes  int64     `gorm:"not null" json:"size_bytes"`
	MimeType   string    `json:"mime_type"`
	BlobPath   string    `gorm:"not null" json:"-"`
	UploadedBy string    `gorm:"not null" json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}
