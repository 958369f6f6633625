package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shuhuiluo/trivia-game/internal/middleware"
	"github.com/shuhuiluo/trivia-game/internal/models"
	"github.com/shuhuiluo/trivia-game/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Points   int    `json:"points" example:"100"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Points: u.Points}
}

// currentUser returns the user placed in the context by SessionAuth.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.UserKey).(*models.User)
}

// respondError maps service errors to status codes. Anything outside the
// domain taxonomy is logged and hidden behind a generic 500 body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidWager),
		errors.Is(err, services.ErrNoQuestions),
		errors.Is(err, services.ErrInvalidQuestionData),
		errors.Is(err, services.ErrRoundNotFound),
		errors.Is(err, services.ErrAlreadyAnswered),
		errors.Is(err, services.ErrQuestionNotFound):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("unexpected error", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
