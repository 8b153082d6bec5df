package service

import (
	"context"
	"fmt"

	"github.com/mroth/weightedrand/v2"
	"github.com/timmy/memeshare/internal/logger"
	"github.com/timmy/memeshare/internal/source"
)

// Caption is a canned caption with its relative pick weight.
type Caption struct {
	Text   string
	Weight int
}

// DefaultCaptions are the canned captions offered by the caption generator,
// all equally likely.
var DefaultCaptions = []Caption{
	{Text: "When you realize it's Monday again...", Weight: 1},
	{Text: "Me waiting for the weekend like...", Weight: 1},
	{Text: "That awkward moment when...", Weight: 1},
	{Text: "When your code works on the first try!", Weight: 1},
	{Text: "Debugging be like...", Weight: 1},
	{Text: "React devs after another new update drops...", Weight: 1},
}

// CaptionService suggests a caption for a new upload.
type CaptionService struct {
	source  source.TemplateSource
	chooser *weightedrand.Chooser[string, int]
}

// NewCaptionService creates a caption service that picks from captions in
// proportion to their weights. Captions with a non-positive weight are never
// picked.
// Parameters:
//   - src: template source used as a liveness check before suggesting.
//   - captions: caption pool; empty uses DefaultCaptions.
//
// Returns:
//   - *CaptionService: initialized service.
//   - error: non-nil if no caption has a positive weight.
func NewCaptionService(src source.TemplateSource, captions []Caption) (*CaptionService, error) {
	if len(captions) == 0 {
		captions = DefaultCaptions
	}
	choices := make([]weightedrand.Choice[string, int], 0, len(captions))
	for _, c := range captions {
		if c.Weight <= 0 || c.Text == "" {
			continue
		}
		choices = append(choices, weightedrand.NewChoice(c.Text, c.Weight))
	}
	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, fmt.Errorf("failed to build caption chooser: %w", err)
	}
	return &CaptionService{source: src, chooser: chooser}, nil
}

// Generate returns a random caption. The template source must answer with at
// least one template first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//
// Returns:
//   - string: suggested caption.
//   - error: ErrCaptionUnavailable if the source is down or empty.
func (s *CaptionService) Generate(ctx context.Context) (string, error) {
	memes, err := s.source.FetchTemplates(ctx)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Error("Error fetching AI caption")
		return "", fmt.Errorf("%w: %v", ErrCaptionUnavailable, err)
	}
	if len(memes) == 0 {
		return "", ErrCaptionUnavailable
	}
	return s.chooser.Pick(), nil
}
