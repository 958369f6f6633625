package handlers

import (
	"net/http"

	"github.com/shuhuiluo/trivia-game/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

type LeaderboardResponse struct {
	Leaders []services.Leader `json:"leaders"`
}

// Stats godoc
// @Summary      Current user's game statistics
// @Tags         stats
// @Produce      json
// @Success      200 {object} services.UserStats
// @Failure      401 {object} ErrorResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats.Stats(currentUser(c)))
}

// Leaderboard godoc
// @Summary      Top ten users by points
// @Tags         stats
// @Produce      json
// @Success      200 {object} LeaderboardResponse
// @Router       /api/leaderboard [get]
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	leaders, err := h.stats.Leaderboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LeaderboardResponse{Leaders: leaders})
}
