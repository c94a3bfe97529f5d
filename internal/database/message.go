package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
)

func (d *Database) SaveMessage(ctx context.Context, msg *models.Message) error {
	if err := d.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("gorm: save message for room %s: %w", msg.RoomID, err)
	}
	return nil
}

func (d *Database) ListMessages(ctx context.Context, roomID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := d.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list messages for room %s: %w", roomID, err)
	}
	return messages, nil
}
