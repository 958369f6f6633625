package handlers

import (
	"net/http"

	"github.com/shuhuiluo/trivia-game/internal/services"
	"github.com/shuhuiluo/trivia-game/internal/ws"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	game  *services.GameService
	stats *services.StatsService
	hub   *ws.Hub
}

func NewGameHandler(game *services.GameService, stats *services.StatsService, hub *ws.Hub) *GameHandler {
	return &GameHandler{game: game, stats: stats, hub: hub}
}

type StartGameRequest struct {
	CategoryID uint `json:"categoryId" binding:"required" example:"1"`
	Wager      int  `json:"wager" binding:"required,min=1" example:"10"`
}

type AnswerRequest struct {
	RoundID     uint `json:"roundId" binding:"required" example:"42"`
	AnswerIndex *int `json:"answerIndex" binding:"required,min=0,max=3" example:"2"`
}

type CategoriesResponse struct {
	Categories []services.CategoryWithCount `json:"categories"`
}

type RoundResponse struct {
	Round services.StartedRound `json:"round"`
}

// Categories godoc
// @Summary      List categories with question counts
// @Tags         game
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Router       /api/categories [get]
func (h *GameHandler) Categories(c *gin.Context) {
	categories, err := h.game.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CategoriesResponse{Categories: categories})
}

// Start godoc
// @Summary      Start a game round
// @Description  Wager points and receive a random question from the category
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body StartGameRequest true "Category and wager"
// @Success      200 {object} RoundResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/game/start [post]
func (h *GameHandler) Start(c *gin.Context) {
	var req StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	round, err := h.game.StartRound(currentUser(c), req.CategoryID, req.Wager)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RoundResponse{Round: *round})
}

// Answer godoc
// @Summary      Submit an answer
// @Description  Resolve a round, settle the wager and update stats
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body AnswerRequest true "Round and answer index"
// @Success      200 {object} services.AnswerResult
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/game/answer [post]
func (h *GameHandler) Answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.game.SubmitAnswer(currentUser(c), req.RoundID, *req.AnswerIndex)
	if err != nil {
		respondError(c, err)
		return
	}

	if leaders, lbErr := h.stats.Leaderboard(); lbErr == nil {
		h.hub.Broadcast(ws.WSMessage{Type: "leaderboard", Data: leaders})
	}

	c.JSON(http.StatusOK, result)
}
