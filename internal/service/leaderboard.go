package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/logger"
	"github.com/timmy/memeshare/internal/repository"
)

// DefaultLeaderboardLimit is the size of both leaderboard views.
const DefaultLeaderboardLimit = 10

// TopMemes returns at most n memes ordered by descending likes. Equal likes
// keep their order in memes. memes is not modified.
func TopMemes(memes []domain.UploadedMeme, n int) []domain.UploadedMeme {
	sorted := slices.Clone(memes)
	slices.SortStableFunc(sorted, func(a, b domain.UploadedMeme) int {
		return cmp.Compare(b.Likes, a.Likes)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []domain.UploadedMeme{}
	}
	return sorted
}

// RankUploaders sums likes per uploader and returns at most n rankings by
// descending total. Equal totals keep the order in which each uploader first
// appears in memes. Memes without an uploader are ranked under "".
func RankUploaders(memes []domain.UploadedMeme, n int) []domain.UserRanking {
	index := make(map[string]int)
	rankings := []domain.UserRanking{}
	for _, m := range memes {
		i, ok := index[m.Uploader]
		if !ok {
			i = len(rankings)
			index[m.Uploader] = i
			rankings = append(rankings, domain.UserRanking{Username: m.Uploader})
		}
		rankings[i].TotalLikes += m.Likes
	}

	slices.SortStableFunc(rankings, func(a, b domain.UserRanking) int {
		return cmp.Compare(b.TotalLikes, a.TotalLikes)
	})
	if n >= 0 && len(rankings) > n {
		rankings = rankings[:n]
	}
	return rankings
}

// LeaderboardService computes leaderboards from the uploaded-memes collection.
type LeaderboardService struct {
	records *repository.RecordRepository
	limit   int
}

// NewLeaderboardService creates a new leaderboard service.
// Parameters:
//   - records: record repository.
//   - limit: size of each view; non-positive uses DefaultLeaderboardLimit.
//
// Returns:
//   - *LeaderboardService: initialized service.
func NewLeaderboardService(records *repository.RecordRepository, limit int) *LeaderboardService {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	return &LeaderboardService{records: records, limit: limit}
}

// Get loads the uploaded memes and builds both leaderboard views.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//
// Returns:
//   - *domain.Leaderboard: top memes and top creators with empty-state flags.
//   - error: non-nil if the collection cannot be read.
func (s *LeaderboardService) Get(ctx context.Context) (*domain.Leaderboard, error) {
	start := time.Now()

	memes, err := s.records.ListUploaded(ctx)
	if err != nil {
		return nil, err
	}

	board := &domain.Leaderboard{
		TopMemes:    TopMemes(memes, s.limit),
		TopCreators: RankUploaders(memes, s.limit),
	}
	board.HasMemes = len(board.TopMemes) > 0
	board.HasRankings = len(board.TopCreators) > 0

	logger.With(logger.Fields{logger.FieldComponent: "leaderboard"}).WithDuration(start).WithCount(len(memes)).
		Debug(ctx, "Leaderboard computed")

	return board, nil
}
