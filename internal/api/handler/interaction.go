package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/memeshare/internal/service"
)

// InteractionHandler handles likes and comments for any meme id.
type InteractionHandler struct {
	interactions *service.InteractionService
}

// NewInteractionHandler creates a new interaction handler.
func NewInteractionHandler(interactions *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactions: interactions}
}

// CommentRequest is the body of POST /api/v1/memes/:id/comments.
type CommentRequest struct {
	Text string `json:"text"`
}

// GetInteractions handles GET /api/v1/memes/:id/interactions.
func (h *InteractionHandler) GetInteractions(c *gin.Context) {
	summary, err := h.interactions.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load interactions", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Like handles POST /api/v1/memes/:id/like.
// Parameters:
//   - c: Gin request context.
//
// Returns: none (writes {"memeId", "likes"}).
func (h *InteractionHandler) Like(c *gin.Context) {
	id := c.Param("id")
	likes, err := h.interactions.Like(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to like meme", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"memeId": id,
		"likes":  likes,
	})
}

// AddComment handles POST /api/v1/memes/:id/comments.
// Parameters:
//   - c: Gin request context.
//
// Returns: none (writes the stored comment).
func (h *InteractionHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	comment, err := h.interactions.AddComment(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, "Failed to add comment", err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
