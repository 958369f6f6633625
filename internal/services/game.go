package services

import (
	"encoding/json"
	"errors"

	"github.com/shuhuiluo/trivia-game/internal/models"

	"gorm.io/gorm"
)

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

type CategoryWithCount struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"questionCount"`
}

type StartedRound struct {
	ID       uint     `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type AnswerResult struct {
	Correct      bool `json:"correct"`
	CorrectIndex int  `json:"correctIndex"`
	PointsDelta  int  `json:"pointsDelta"`
	NewBalance   int  `json:"newBalance"`
}

// ListCategories returns every category with its question count. The left
// join keeps zero-question categories in the result.
func (s *GameService) ListCategories() ([]CategoryWithCount, error) {
	var categories []CategoryWithCount
	err := s.db.Model(&models.Category{}).
		Select("categories.id, categories.name, COUNT(questions.id) AS question_count").
		Joins("LEFT JOIN questions ON questions.category_id = categories.id").
		Group("categories.id, categories.name").
		Order("categories.id").
		Scan(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GameService) pickRandom(categoryID uint, excludeIDs []uint) (*models.Question, error) {
	query := s.db.Where("category_id = ?", categoryID)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var question models.Question
	err := query.Order("RANDOM()").First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// StartRound picks a question for the user and opens a round on it.
//
// The user's previously issued questions in the category are excluded,
// answered or not; once the category is exhausted repeats are allowed so
// an active player is never starved.
func (s *GameService) StartRound(user *models.User, categoryID uint, wager int) (*StartedRound, error) {
	if wager < 1 || wager > user.Points {
		return nil, ErrInvalidWager
	}

	var seen []uint
	err := s.db.Model(&models.Round{}).
		Joins("JOIN questions ON questions.id = game_rounds.question_id").
		Where("game_rounds.user_id = ? AND questions.category_id = ?", user.ID, categoryID).
		Pluck("game_rounds.question_id", &seen).Error
	if err != nil {
		return nil, err
	}

	question, err := s.pickRandom(categoryID, seen)
	if err != nil {
		return nil, err
	}
	if question == nil && len(seen) > 0 {
		question, err = s.pickRandom(categoryID, nil)
		if err != nil {
			return nil, err
		}
	}
	if question == nil {
		return nil, ErrNoQuestions
	}

	var options []string
	if err := json.Unmarshal([]byte(question.Options), &options); err != nil {
		return nil, ErrInvalidQuestionData
	}

	round := models.Round{
		UserID:     user.ID,
		QuestionID: question.ID,
		Wager:      wager,
	}
	if err := s.db.Create(&round).Error; err != nil {
		return nil, err
	}

	// CorrectIndex stays server-side until the round resolves.
	return &StartedRound{
		ID:       round.ID,
		Question: question.Text,
		Options:  options,
	}, nil
}

// SubmitAnswer resolves a round. The round lookup is scoped to the caller,
// so a round id belonging to another user behaves exactly like a missing
// one. The round transition and the stats update commit together or not
// at all.
func (s *GameService) SubmitAnswer(user *models.User, roundID uint, answerIndex int) (*AnswerResult, error) {
	var round models.Round
	err := s.db.Where("id = ? AND user_id = ?", roundID, user.ID).First(&round).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}

	if round.Resolved() {
		return nil, ErrAlreadyAnswered
	}

	var question models.Question
	if err := s.db.First(&question, round.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	correct := answerIndex == question.CorrectIndex
	pointsDelta := round.Wager
	if !correct {
		pointsDelta = -round.Wager
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Conditional update: only an awaiting round resolves. If a
		// concurrent submit got there first, zero rows match and we
		// reject instead of double-paying.
		res := tx.Model(&models.Round{}).
			Where("id = ? AND answer_index IS NULL", round.ID).
			Updates(map[string]interface{}{
				"answer_index": answerIndex,
				"correct":      correct,
				"points_delta": pointsDelta,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyAnswered
		}

		counter := "incorrect_answers"
		if correct {
			counter = "correct_answers"
		}
		return tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Updates(map[string]interface{}{
				"points":       gorm.Expr("points + ?", pointsDelta),
				"games_played": gorm.Expr("games_played + 1"),
				counter:        gorm.Expr(counter + " + 1"),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	var updated models.User
	if err := s.db.First(&updated, user.ID).Error; err != nil {
		return nil, err
	}

	return &AnswerResult{
		Correct:      correct,
		CorrectIndex: question.CorrectIndex,
		PointsDelta:  pointsDelta,
		NewBalance:   updated.Points,
	}, nil
}
