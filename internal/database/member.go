package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"gorm.io/gorm/clause"
)

func (d *Database) UpsertMember(ctx context.Context, member *models.Member) error {
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}, {Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name"}),
	}).Create(member).Error
	if err != nil {
		return fmt.Errorf("gorm: upsert member (room %s, session %s): %w",
			member.RoomID, member.SessionID, err)
	}
	return nil
}

func (d *Database) ListMembers(ctx context.Context, roomID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := d.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list members for room %s: %w", roomID, err)
	}
	return members, nil
}
