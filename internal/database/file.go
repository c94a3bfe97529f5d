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

func (d *Database) SaveFile(ctx context.Context, file *models.FileAsset) error {
	if err := d.db.WithContext(ctx).Create(file).Error; err != nil {
		return fmt.Errorf("gorm: save file %q for room %s: %w", file.FileName, file.RoomID, err)
	}
	return nil
}

func (d *Database) FindFileByID(ctx context.Context, id uuid.UUID) (*models.FileAsset, error) {
	var file models.FileAsset
	if err := d.db.WithContext(ctx).First(&file, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFileNotFound
		}
		return nil, fmt.Errorf("gorm: find file %s: %w", id, err)
	}
	return &file, nil
}

func (d *Database) ListFiles(ctx context.Context, roomID uuid.UUID) ([]models.FileAsset, error) {
	var files []models.FileAsset
	err := d.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list files for room %s: %w", roomID, err)
	}
	return files, nil
}

func (d *Database) ListBlobPaths(ctx context.Context, roomID uuid.UUID) ([]string, error) {
	var paths []string
	err := d.db.WithContext(ctx).Model(&models.FileAsset{}).
		Where("room_id = ?", roomID).
		Pluck("blob_path", &paths).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list blob paths for room %s: %w", roomID, err)
	}
	return paths, nil
}
