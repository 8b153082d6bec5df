package imagehost

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/timmy/memeshare/internal/logger"
)

const (
	// DefaultImgBBBaseURL is the public imgbb API.
	DefaultImgBBBaseURL = "https://api.imgbb.com"

	imgbbUploadPath = "/1/upload"
)

// ImgBB uploads images to imgbb.
type ImgBB struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

// ImgBBConfig holds configuration for the imgbb host.
type ImgBBConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewImgBB creates a new imgbb host.
func NewImgBB(cfg *ImgBBConfig) *ImgBB {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultImgBBBaseURL
	}
	client := resty.New()
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &ImgBB{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

// Name identifies the host in logs.
func (h *ImgBB) Name() string {
	return "imgbb"
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
}

type imgbbError struct {
	StatusCode int    `json:"status_code"`
	StatusTxt  string `json:"status_txt"`
	Error      struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload posts img as multipart form field "image".
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - img: validated image.
//
// Returns:
//   - string: hosted image URL.
//   - error: ErrUploadRejected when imgbb refuses, or a transport error.
func (h *ImgBB) Upload(ctx context.Context, img *Image) (string, error) {
	ctx = logger.WithField(ctx, logger.FieldProvider, h.Name())
	start := time.Now()

	var result imgbbResponse
	var apiErr imgbbError
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("key", h.apiKey).
		SetFileReader("image", img.Filename, bytes.NewReader(img.Data)).
		SetResult(&result).
		SetError(&apiErr).
		Post(h.baseURL + imgbbUploadPath)
	if err != nil {
		return "", fmt.Errorf("%w: imgbb: %w", ErrHostUnavailable, err)
	}

	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("%w: %s", ErrUploadRejected, msg)
	}
	if !result.Success || result.Data.URL == "" {
		return "", ErrUploadRejected
	}

	logger.With(logger.Fields{logger.FieldSize: img.Size()}).WithDuration(start).
		Info(ctx, "Image uploaded to imgbb")
	return result.Data.URL, nil
}
