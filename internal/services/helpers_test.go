package services

import (
	"encoding/json"
	"testing"

	"github.com/shuhuiluo/trivia-game/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Category{},
		&models.Question{},
		&models.Round{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, points int) *models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		PasswordHash: "x",
		Points:       points,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return &category
}

// createTestQuestion adds a four-option question with the given correct index.
func createTestQuestion(t *testing.T, db *gorm.DB, categoryID uint, text string, correctIndex int) *models.Question {
	t.Helper()

	opts, err := json.Marshal([]string{"A", "B", "C", "D"})
	if err != nil {
		t.Fatalf("failed to marshal options: %v", err)
	}
	question := models.Question{
		CategoryID:   categoryID,
		Text:         text,
		Options:      string(opts),
		CorrectIndex: correctIndex,
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("failed to create test question: %v", err)
	}
	return &question
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) *models.User {
	t.Helper()

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	return &user
}
