package services

import (
	"github.com/shuhuiluo/trivia-game/internal/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type UserStats struct {
	Points      int     `json:"points"`
	GamesPlayed int     `json:"gamesPlayed"`
	Correct     int     `json:"correct"`
	Incorrect   int     `json:"incorrect"`
	Accuracy    float64 `json:"accuracy"`
}

type Leader struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
}

func (s *StatsService) Stats(user *models.User) UserStats {
	accuracy := 0.0
	if user.GamesPlayed > 0 {
		accuracy = float64(user.CorrectAnswers) / float64(user.GamesPlayed)
	}
	return UserStats{
		Points:      user.Points,
		GamesPlayed: user.GamesPlayed,
		Correct:     user.CorrectAnswers,
		Incorrect:   user.IncorrectAnswers,
		Accuracy:    accuracy,
	}
}

// Leaderboard returns the top ten users by points, descending.
func (s *StatsService) Leaderboard() ([]Leader, error) {
	var leaders []Leader
	err := s.db.Model(&models.User{}).
		Select("username, points").
		Order("points DESC").
		Limit(10).
		Scan(&leaders).Error
	if err != nil {
		return nil, err
	}
	return leaders, nil
}
