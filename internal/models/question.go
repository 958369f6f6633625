package models

import "time"

// Question holds one trivia item. Options is a JSON-encoded string array
// (expected arity 4); CorrectIndex points into it. Immutable once seeded.
type Question struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryID   uint      `gorm:"not null;index" json:"category_id"`
	Category     Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	Options      string    `gorm:"type:text;not null" json:"-"`
	CorrectIndex int       `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
