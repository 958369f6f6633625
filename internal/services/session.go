package services

import (
	"errors"
	"time"

	"github.com/shuhuiluo/trivia-game/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// Create issues a fresh opaque token for the user. Existing sessions are
// left alone; they expire on their own schedule.
func (s *SessionService) Create(userID uint) (string, error) {
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(models.SessionLifetime),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return "", err
	}
	return session.Token, nil
}

// Resolve returns the user owning an unexpired session token, or nil when
// the token is unknown or past its expiry.
func (s *SessionService) Resolve(token string) (*models.User, error) {
	var session models.Session
	err := s.db.Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Invalidate deletes the session. Unknown tokens are a no-op.
func (s *SessionService) Invalidate(token string) error {
	return s.db.Delete(&models.Session{}, "token = ?", token).Error
}
