package database

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/shuhuiluo/trivia-game/internal/config"
	"github.com/shuhuiluo/trivia-game/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	// TranslateError turns the unique-constraint violation on
	// users.username into gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	slog.Info("database connected", "host", cfg.DBHost, "name", cfg.DBName)
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Category{},
		&models.Question{},
		&models.Round{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	slog.Info("database migrated")
}
