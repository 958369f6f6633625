package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP status codes with errors.Is; anything else is a 500.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidWager        = errors.New("wager exceeds your available points")
	ErrNoQuestions         = errors.New("no questions available in this category")
	ErrInvalidQuestionData = errors.New("invalid question data")
	ErrRoundNotFound       = errors.New("round not found")
	ErrAlreadyAnswered     = errors.New("round already answered")
	ErrQuestionNotFound    = errors.New("question not found")
)
