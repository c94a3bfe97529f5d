package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
)

func (d *Database) AppendActivity(ctx context.Context, event *models.ActivityEvent) error {
	if err := d.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("gorm: append activity %s for room %s: %w", event.Action, event.RoomID, err)
	}
	return nil
}

func (d *Database) ListActivity(ctx context.Context, roomID uuid.UUID, limit int) ([]models.ActivityEvent, error) {
	var events []models.ActivityEvent
	err := d.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list activity for room %s: %w", roomID, err)
	}
	return events, nil
}
