package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	storeDriver string
	imageHost   string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(storeDriver, imageHost string) *HealthHandler {
	return &HealthHandler{storeDriver: storeDriver, imageHost: imageHost}
}

// Health returns the health status of the service
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"store":      h.storeDriver,
		"image_host": h.imageHost,
	})
}
