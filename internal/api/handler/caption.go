package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/memeshare/internal/service"
)

// CaptionHandler suggests captions for new uploads.
type CaptionHandler struct {
	captions *service.CaptionService
}

// NewCaptionHandler creates a new caption handler.
func NewCaptionHandler(captions *service.CaptionService) *CaptionHandler {
	return &CaptionHandler{captions: captions}
}

// GenerateCaption handles POST /api/v1/captions.
func (h *CaptionHandler) GenerateCaption(c *gin.Context) {
	caption, err := h.captions.Generate(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to generate caption", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"caption": caption})
}
