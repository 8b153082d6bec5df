package source

import (
	"context"

	"github.com/timmy/memeshare/internal/domain"
)

// TemplateSource defines the interface for meme template providers.
type TemplateSource interface {
	// GetSourceID returns the unique identifier for this source.
	// Parameters: none.
	// Returns:
	//   - string: stable source identifier.
	GetSourceID() string

	// FetchTemplates fetches the provider's current template list.
	// A response the provider marks unsuccessful yields an empty list, not an error.
	// Parameters:
	//   - ctx: context for cancellation and deadlines.
	// Returns:
	//   - []domain.Meme: templates in provider order.
	//   - error: non-nil on transport or decoding failure.
	FetchTemplates(ctx context.Context) ([]domain.Meme, error)
}
