package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"github.com/quickshare/rooms/internal/repository"
	"gorm.io/gorm"
)

func (d *Database) CreateRoomWithNote(ctx context.Context, room *models.Room) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			// The partial unique index on active codes catches the race
			// two concurrent creates can win against CodeInUse.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return repository.ErrDuplicateCode
			}
			return fmt.Errorf("gorm: create room (code %s): %w", room.Code, err)
		}
		note := &models.SharedNote{RoomID: room.ID, Content: ""}
		if err := tx.Create(note).Error; err != nil {
			return fmt.Errorf("gorm: create shared note for room %s: %w", room.ID, err)
		}
		return nil
	})
}

func (d *Database) FindRoomByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	var room models.Room
	if err := d.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}
		return nil, fmt.Errorf("gorm: find room %s: %w", id, err)
	}
	return &room, nil
}

// FindRoomByCode prefers the newest room so a reused code resolves to the
// live room, not an old tombstone.
func (d *Database) FindRoomByCode(ctx context.Context, code string) (*models.Room, error) {
	var room models.Room
	err := d.db.WithContext(ctx).
		Where("code = ?", code).
		Order("created_at DESC").
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}
		return nil, fmt.Errorf("gorm: find room by code %s: %w", code, err)
	}
	return &room, nil
}

func (d *Database) CodeInUse(ctx context.Context, code string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&models.Room{}).
		Where("code = ? AND is_active = ?", code, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("gorm: count active rooms with code %s: %w", code, err)
	}
	return count > 0, nil
}

// Teardown purges every child row and deactivates the room. The Room row
// stays behind as a tombstone; its code is free for reuse once inactive.
func (d *Database) TeardownRoom(ctx context.Context, id uuid.UUID) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Message{}, "room_id = ?", id).Error; err != nil {
			return fmt.Errorf("gorm: delete messages for room %s: %w", id, err)
		}
		if err := tx.Delete(&models.FileAsset{}, "room_id = ?", id).Error; err != nil {
			return fmt.Errorf("gorm: delete files for room %s: %w", id, err)
		}
		if err := tx.Delete(&models.Member{}, "room_id = ?", id).Error; err != nil {
			return fmt.Errorf("gorm: delete members for room %s: %w", id, err)
		}
		if err := tx.Delete(&models.SharedNote{}, "room_id = ?", id).Error; err != nil {
			return fmt.Errorf("gorm: delete shared note for room %s: %w", id, err)
		}
		if err := tx.Delete(&models.ActivityEvent{}, "room_id = ?", id).Error; err != nil {
			return fmt.Errorf("gorm: delete activity for room %s: %w", id, err)
		}
		err := tx.Model(&models.Room{}).Where("id = ?", id).
			Update("is_active", false).Error
		if err != nil {
			return fmt.Errorf("gorm: deactivate room %s: %w", id, err)
		}
		return nil
	})
}
