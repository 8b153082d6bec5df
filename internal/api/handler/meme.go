package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/imagehost"
	"github.com/timmy/memeshare/internal/service"
)

// MemeHandler handles uploaded-meme endpoints.
type MemeHandler struct {
	explore        *service.ExploreService
	uploads        *service.UploadService
	maxUploadBytes int64
}

// NewMemeHandler creates a new meme handler.
// Parameters:
//   - explore: explore service instance.
//   - uploads: upload service instance.
//   - maxUploadMB: request body cap for uploads; non-positive means 32.
//
// Returns:
//   - *MemeHandler: initialized handler.
func NewMemeHandler(explore *service.ExploreService, uploads *service.UploadService, maxUploadMB int) *MemeHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 32
	}
	return &MemeHandler{
		explore:        explore,
		uploads:        uploads,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

// ListMemes handles GET /api/v1/memes?q=&filter=&sort=.
// Parameters:
//   - c: Gin request context.
//
// Returns: none (writes JSON response).
func (h *MemeHandler) ListMemes(c *gin.Context) {
	category, err := domain.ParseCategory(c.Query("filter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sortMode, err := domain.ParseSortMode(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.explore.Explore(c.Request.Context(), service.ExploreQuery{
		Search:   c.Query("q"),
		Category: category,
		Sort:     sortMode,
	})
	if err != nil {
		respondError(c, "Failed to list memes", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMeme handles GET /api/v1/memes/:id.
func (h *MemeHandler) GetMeme(c *gin.Context) {
	meme, err := h.explore.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get meme", err)
		return
	}
	c.JSON(http.StatusOK, meme)
}

// UploadMeme handles POST /api/v1/memes as multipart form data with fields
// image, caption and uploader.
// Parameters:
//   - c: Gin request context.
//
// Returns: none (writes JSON response).
func (h *MemeHandler) UploadMeme(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image is too large"})
			return
		}
		respondError(c, "Please select an image", imagehost.ErrNoImage)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image: " + err.Error()})
		return
	}

	meme, err := h.uploads.Upload(c.Request.Context(), service.UploadRequest{
		Filename: header.Filename,
		Data:     data,
		Caption:  c.PostForm("caption"),
		Uploader: c.PostForm("uploader"),
	})
	if err != nil {
		respondError(c, "Upload failed", err)
		return
	}

	c.JSON(http.StatusCreated, meme)
}
