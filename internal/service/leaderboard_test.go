package service

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmy/memeshare/internal/domain"
)

func TestTopMemes_StableOrder(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	memes := []domain.UploadedMeme{
		uploaded("rec0", "first", "a", 5, base),
		uploaded("rec1", "second", "b", 2, base),
		uploaded("rec2", "third", "a", 5, base),
	}

	top := TopMemes(memes, DefaultLeaderboardLimit)

	ids := make([]string, 0, len(top))
	for _, m := range top {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"rec0", "rec2", "rec1"}, ids)
}

func TestTopMemes_DoesNotMutateInput(t *testing.T) {
	base := time.Now()
	memes := []domain.UploadedMeme{
		uploaded("x", "", "", 1, base),
		uploaded("y", "", "", 3, base),
		uploaded("z", "", "", 2, base),
	}
	before := slices.Clone(memes)

	_ = TopMemes(memes, 2)
	_ = RankUploaders(memes, 2)

	assert.Equal(t, before, memes)
}

func TestTopMemes_Limit(t *testing.T) {
	var memes []domain.UploadedMeme
	for i := 0; i < 25; i++ {
		memes = append(memes, uploaded(fmt.Sprintf("m%d", i), "", "", i, time.Now()))
	}

	top := TopMemes(memes, DefaultLeaderboardLimit)
	require.Len(t, top, DefaultLeaderboardLimit)
	assert.Equal(t, "m24", top[0].ID)
	assert.Equal(t, "m15", top[9].ID)

	assert.Empty(t, TopMemes(nil, DefaultLeaderboardLimit))
	assert.NotNil(t, TopMemes(nil, DefaultLeaderboardLimit))
}

func TestRankUploaders(t *testing.T) {
	base := time.Now()
	memes := []domain.UploadedMeme{
		uploaded("rec0", "", "a", 5, base),
		uploaded("rec1", "", "b", 2, base),
		uploaded("rec2", "", "a", 5, base),
	}

	assert.Equal(t, []domain.UserRanking{
		{Username: "a", TotalLikes: 10},
		{Username: "b", TotalLikes: 2},
	}, RankUploaders(memes, DefaultLeaderboardLimit))
}

func TestRankUploaders_TiesKeepFirstSeenOrder(t *testing.T) {
	base := time.Now()
	memes := []domain.UploadedMeme{
		uploaded("1", "", "carol", 1, base),
		uploaded("2", "", "", 3, base),
		uploaded("3", "", "alice", 3, base),
		uploaded("4", "", "carol", 2, base),
	}

	assert.Equal(t, []domain.UserRanking{
		{Username: "carol", TotalLikes: 3},
		{Username: "", TotalLikes: 3},
		{Username: "alice", TotalLikes: 3},
	}, RankUploaders(memes, DefaultLeaderboardLimit))
}

func TestRankUploaders_Limit(t *testing.T) {
	var memes []domain.UploadedMeme
	for i := 0; i < 15; i++ {
		memes = append(memes, uploaded(fmt.Sprintf("m%d", i), "", fmt.Sprintf("user%d", i), i, time.Now()))
	}
	rankings := RankUploaders(memes, DefaultLeaderboardLimit)
	require.Len(t, rankings, DefaultLeaderboardLimit)
	assert.Equal(t, "user14", rankings[0].Username)
}

func TestLeaderboardService_Get(t *testing.T) {
	ctx := context.Background()
	records := newTestRecords(t)
	svc := NewLeaderboardService(records, 0)

	board, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, board.HasMemes)
	assert.False(t, board.HasRankings)
	assert.Empty(t, board.TopMemes)

	seedUploaded(t, records,
		uploaded("rec0", "one", "a", 5, time.Now()),
		uploaded("rec1", "two", "b", 2, time.Now()),
		uploaded("rec2", "three", "a", 5, time.Now()),
	)

	board, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, board.HasMemes)
	assert.True(t, board.HasRankings)
	assert.Equal(t, "rec0", board.TopMemes[0].ID)
	assert.Equal(t, domain.UserRanking{Username: "a", TotalLikes: 10}, board.TopCreators[0])
}

func TestLeaderboardService_CustomLimit(t *testing.T) {
	records := newTestRecords(t)
	seedUploaded(t, records,
		uploaded("rec0", "", "a", 1, time.Now()),
		uploaded("rec1", "", "b", 2, time.Now()),
		uploaded("rec2", "", "c", 3, time.Now()),
	)

	board, err := NewLeaderboardService(records, 2).Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, board.TopMemes, 2)
	assert.Len(t, board.TopCreators, 2)
}
