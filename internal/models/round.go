package models

import "time"

// Round is one play attempt. A round is created awaiting an answer
// (AnswerIndex nil) and resolves exactly once; AnswerIndex, Correct and
// PointsDelta are set together in that single transition.
type Round struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionID  uint      `gorm:"not null;index" json:"question_id"`
	Question    Question  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Wager       int       `gorm:"not null" json:"wager"`
	AnswerIndex *int      `json:"answer_index,omitempty"`
	Correct     *bool     `json:"correct,omitempty"`
	PointsDelta *int      `json:"points_delta,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Round) TableName() string { return "game_rounds" }

// Resolved reports whether the round has left the awaiting-answer state.
func (r *Round) Resolved() bool { return r.AnswerIndex != nil }
