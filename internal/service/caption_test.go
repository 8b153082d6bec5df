package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmy/memeshare/internal/domain"
)

func TestCaptionService_Generate(t *testing.T) {
	src := &fakeSource{memes: []domain.Meme{{ID: "1", Name: "Drake Hotline Bling"}}}
	svc, err := NewCaptionService(src, nil)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		caption, err := svc.Generate(context.Background())
		require.NoError(t, err)
		assert.Contains(t, captionTexts(DefaultCaptions), caption)
	}
	assert.Equal(t, 20, src.calls)
}

func captionTexts(captions []Caption) []string {
	out := make([]string, 0, len(captions))
	for _, c := range captions {
		out = append(out, c.Text)
	}
	return out
}

func TestCaptionService_CustomPool(t *testing.T) {
	src := &fakeSource{memes: []domain.Meme{{ID: "1"}}}
	svc, err := NewCaptionService(src, []Caption{
		{Text: "only one", Weight: 3},
		{Text: "disabled", Weight: 0},
		{Text: "negative", Weight: -2},
	})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		caption, err := svc.Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "only one", caption)
	}
}

func TestCaptionService_WeightsBiasPicks(t *testing.T) {
	src := &fakeSource{memes: []domain.Meme{{ID: "1"}}}
	svc, err := NewCaptionService(src, []Caption{
		{Text: "common", Weight: 99},
		{Text: "rare", Weight: 1},
	})
	require.NoError(t, err)

	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		caption, err := svc.Generate(context.Background())
		require.NoError(t, err)
		counts[caption]++
	}
	assert.Greater(t, counts["common"], counts["rare"])
	assert.Equal(t, 1000, counts["common"]+counts["rare"])
}

func TestNewCaptionService_NoPositiveWeights(t *testing.T) {
	_, err := NewCaptionService(&fakeSource{}, []Caption{{Text: "x", Weight: 0}})
	assert.Error(t, err)
}

func TestCaptionService_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		src  *fakeSource
	}{
		{name: "source error", src: &fakeSource{err: errors.New("connection refused")}},
		{name: "no templates", src: &fakeSource{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewCaptionService(tt.src, nil)
			require.NoError(t, err)

			caption, err := svc.Generate(context.Background())
			assert.ErrorIs(t, err, ErrCaptionUnavailable)
			assert.Empty(t, caption)
		})
	}
}

func TestTemplateService(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{memes: []domain.Meme{
		{ID: "181913649", Name: "Drake Hotline Bling", BoxCount: 2},
		{ID: "87743020", Name: "Two Buttons", BoxCount: 3},
	}}
	svc := NewTemplateService(src)

	memes, err := svc.Trending(ctx)
	require.NoError(t, err)
	assert.Len(t, memes, 2)

	meme, err := svc.Get(ctx, "87743020")
	require.NoError(t, err)
	assert.Equal(t, "Two Buttons", meme.Name)

	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrMemeNotFound)

	src.err = errors.New("timeout")
	_, err = svc.Trending(ctx)
	assert.ErrorIs(t, err, src.err)
}
