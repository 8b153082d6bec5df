package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/memeshare/internal/api/middleware"
	"github.com/timmy/memeshare/internal/imagehost"
	"github.com/timmy/memeshare/internal/service"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyComment),
		errors.Is(err, service.ErrInvalidProfile),
		errors.Is(err, imagehost.ErrNoImage),
		errors.Is(err, imagehost.ErrInvalidImage):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrMemeNotFound):
		return http.StatusNotFound
	case errors.Is(err, imagehost.ErrUploadRejected),
		errors.Is(err, imagehost.ErrHostUnavailable),
		errors.Is(err, service.ErrCaptionUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": msg} with the status for err. Server-side
// failures are logged with the request logger.
func respondError(c *gin.Context, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError || status == http.StatusBadGateway {
		middleware.GetLogger(c).WithError(err).Error(msg)
	}
	c.JSON(status, gin.H{"error": msg + ": " + err.Error()})
}
