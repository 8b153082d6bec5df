package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/memeshare/internal/service"
)

// LeaderboardHandler serves the top memes and top creators.
type LeaderboardHandler struct {
	leaderboard *service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(leaderboard *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// GetLeaderboard handles GET /api/v1/leaderboard.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	board, err := h.leaderboard.Get(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load leaderboard", err)
		return
	}
	c.JSON(http.StatusOK, board)
}
