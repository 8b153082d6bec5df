package service

import (
	"context"
	"fmt"

	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/logger"
	"github.com/timmy/memeshare/internal/source"
)

// TemplateService serves trending templates from an external source.
type TemplateService struct {
	source source.TemplateSource
}

// NewTemplateService creates a new template service.
func NewTemplateService(src source.TemplateSource) *TemplateService {
	return &TemplateService{source: src}
}

// Trending returns the source's current templates.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//
// Returns:
//   - []domain.Meme: templates, possibly empty.
//   - error: non-nil if the source could not be reached.
func (s *TemplateService) Trending(ctx context.Context) ([]domain.Meme, error) {
	memes, err := s.source.FetchTemplates(ctx)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Error("Error fetching memes")
		return nil, fmt.Errorf("fetch templates from %s: %w", s.source.GetSourceID(), err)
	}
	return memes, nil
}

// Get returns the template with the given id.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: provider-assigned template id.
//
// Returns:
//   - *domain.Meme: matching template.
//   - error: ErrMemeNotFound if absent, or the fetch error.
func (s *TemplateService) Get(ctx context.Context, id string) (*domain.Meme, error) {
	memes, err := s.Trending(ctx)
	if err != nil {
		return nil, err
	}
	for i := range memes {
		if memes[i].ID == id {
			return &memes[i], nil
		}
	}
	return nil, ErrMemeNotFound
}
