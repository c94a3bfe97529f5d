package models

import (
	"github.com/google/uuid"
	"time"
)

type Room struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	// The partial unique index holds the invariant that no two active
	// rooms share a code; closed tombstones may repeat it.
	Code             string    `gorm:"size:6;not null;uniqueIndex:idx_rooms_active_code,where:is_active" json:"code"`
	CreatorSessionID uuid.UUID `gorm:"not null" json:"creator_session_id"`
	IsActive         bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`

	Members  []Member    `gorm:"foreignKey:RoomID" json:"-"`
	Messages []Message   `gorm:"foreignKey:RoomID" json:"-"`
	Files    []FileAsset `gorm:"foreignKey:RoomID" json:"-"`
}
