package imgflip

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/logger"
)

const (
	// DefaultBaseURL is the public imgflip API.
	DefaultBaseURL = "https://api.imgflip.com"

	getMemesPath = "/get_memes"
)

// Adapter implements source.TemplateSource for the imgflip API.
type Adapter struct {
	client  *resty.Client
	baseURL string
}

// NewAdapter creates a new imgflip adapter.
// Parameters:
//   - baseURL: API base URL; empty uses DefaultBaseURL.
//   - timeout: per-request timeout; zero means none.
//
// Returns:
//   - *Adapter: initialized adapter.
func NewAdapter(baseURL string, timeout time.Duration) *Adapter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Adapter{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// GetSourceID returns the unique identifier for this source.
func (a *Adapter) GetSourceID() string {
	return "imgflip"
}

type getMemesResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Memes []domain.Meme `json:"memes"`
	} `json:"data"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// FetchTemplates fetches the current template list.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//
// Returns:
//   - []domain.Meme: templates, empty when imgflip reports success=false.
//   - error: non-nil on transport failure or an undecodable body.
func (a *Adapter) FetchTemplates(ctx context.Context) ([]domain.Meme, error) {
	ctx = logger.WithField(ctx, logger.FieldProvider, a.GetSourceID())

	var resp getMemesResponse
	httpResp, err := a.client.R().
		SetContext(ctx).
		SetResult(&resp).
		Get(a.baseURL + getMemesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to call imgflip API: %w", err)
	}

	if httpResp.IsError() {
		return nil, fmt.Errorf("imgflip API error: status %d", httpResp.StatusCode())
	}

	if !resp.Success {
		logger.CtxWarn(ctx, "imgflip returned success=false: %s", resp.ErrorMessage)
		return []domain.Meme{}, nil
	}

	memes := resp.Data.Memes
	if memes == nil {
		memes = []domain.Meme{}
	}
	logger.With(logger.Fields{logger.FieldComponent: "templates"}).WithCount(len(memes)).Debug(ctx, "Fetched templates")
	return memes, nil
}
