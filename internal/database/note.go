package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"github.com/quickshare/rooms/internal/repository"
	"gorm.io/gorm"
)

func (d *Database) FindNoteByRoom(ctx context.Context, roomID uuid.UUID) (*models.SharedNote, error) {
	var note models.SharedNote
	if err := d.db.WithContext(ctx).First(&note, "room_id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}
		return nil, fmt.Errorf("gorm: find note for room %s: %w", roomID, err)
	}
	return &note, nil
}

func (d *Database) ReplaceNote(ctx context.Context, roomID uuid.UUID, content string) (*models.SharedNote, error) {
	res := d.db.WithContext(ctx).Model(&models.SharedNote{}).
		Where("room_id = ?", roomID).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("gorm: replace note for room %s: %w", roomID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrNoteNotFound
	}
	return d.FindNoteByRoom(ctx, roomID)
}
