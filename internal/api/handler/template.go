package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/memeshare/internal/service"
)

// TemplateHandler serves trending templates.
type TemplateHandler struct {
	templates *service.TemplateService
}

// NewTemplateHandler creates a new template handler.
func NewTemplateHandler(templates *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// ListTemplates handles GET /api/v1/templates.
// Parameters:
//   - c: Gin request context.
//
// Returns: none (writes JSON response).
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	memes, err := h.templates.Trending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to fetch templates: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": memes,
		"total":   len(memes),
	})
}

// GetTemplate handles GET /api/v1/templates/:id.
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	meme, err := h.templates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get template", err)
		return
	}
	c.JSON(http.StatusOK, meme)
}
