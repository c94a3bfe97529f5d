package dto

import (
	"github.com/google/uuid"
	"time"
)

type JoinRoomRequest struct {
	DisplayName string `json:"display_name" binding:"required,max=50"`
}

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"is_active"`
	IsCreator bool      `json:"is_creator"`
	CreatedAt time.Time `json:"created_at"`
}
