package database

import (
	"errors"

	"github.com/quickshare/rooms/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*Database, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Room{},
		&models.Member{},
		&models.Message{},
		&models.FileAsset{},
		&models.SharedNote{},
		&models.ActivityEvent{},
	)
	if err != nil {
		return nil, err
	}

	return NewDatabase(db), nil
}
