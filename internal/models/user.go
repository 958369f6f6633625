package models

import "time"

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Username         string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash     string    `gorm:"size:255;not null" json:"-"`
	Points           int       `gorm:"not null;default:100" json:"points"`
	GamesPlayed      int       `gorm:"not null;default:0" json:"games_played"`
	CorrectAnswers   int       `gorm:"not null;default:0" json:"correct_answers"`
	IncorrectAnswers int       `gorm:"not null;default:0" json:"incorrect_answers"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// StartingPoints is the balance every new account begins with.
const StartingPoints = 100
