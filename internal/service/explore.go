package service

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/repository"
)

// ExploreQuery is the explore page state: free-text search, category token
// and sort mode.
type ExploreQuery struct {
	Search   string
	Category domain.Category
	Sort     domain.SortMode
}

// ApplyExplore filters and sorts memes without modifying them.
// Search and category both match as case-insensitive caption substrings;
// CategoryAll and an empty search skip their stage. The sort is stable.
func ApplyExplore(memes []domain.UploadedMeme, q ExploreQuery) []domain.UploadedMeme {
	out := make([]domain.UploadedMeme, 0, len(memes))
	search := strings.ToLower(q.Search)
	for _, m := range memes {
		caption := strings.ToLower(m.Caption)
		if search != "" && !strings.Contains(caption, search) {
			continue
		}
		if q.Category != "" && q.Category != domain.CategoryAll &&
			!strings.Contains(caption, string(q.Category)) {
			continue
		}
		out = append(out, m)
	}

	switch q.Sort {
	case domain.SortLikes:
		slices.SortStableFunc(out, func(a, b domain.UploadedMeme) int {
			return cmp.Compare(b.Likes, a.Likes)
		})
	case domain.SortLatest, "":
		slices.SortStableFunc(out, func(a, b domain.UploadedMeme) int {
			return b.CreatedAt.Compare(a.CreatedAt.Time)
		})
	}
	return out
}

// ExploreService runs explore queries over the uploaded-memes collection.
type ExploreService struct {
	records *repository.RecordRepository
}

// NewExploreService creates a new explore service.
func NewExploreService(records *repository.RecordRepository) *ExploreService {
	return &ExploreService{records: records}
}

// Explore loads the uploaded memes and applies q.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - q: explore query.
//
// Returns:
//   - *domain.MemeListResponse: matching memes in display order.
//   - error: non-nil if the collection cannot be read.
func (s *ExploreService) Explore(ctx context.Context, q ExploreQuery) (*domain.MemeListResponse, error) {
	memes, err := s.records.ListUploaded(ctx)
	if err != nil {
		return nil, err
	}
	results := ApplyExplore(memes, q)
	return &domain.MemeListResponse{Results: results, Total: len(results)}, nil
}

// Get returns the uploaded meme with the given id.
func (s *ExploreService) Get(ctx context.Context, id string) (*domain.UploadedMeme, error) {
	memes, err := s.records.ListUploaded(ctx)
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
