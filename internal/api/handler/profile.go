package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/service"
)

// ProfileHandler serves and updates the user profile.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile handles GET /api/v1/profile. The response carries the profile
// together with its uploaded and liked memes.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	overview, err := h.profiles.Overview(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load profile", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// UpdateProfile handles PUT /api/v1/profile.
// Parameters:
//   - c: Gin request context.
//
// Returns: none (writes the stored profile).
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req domain.UserProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	profile, err := h.profiles.Save(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to save profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
