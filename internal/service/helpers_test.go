package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/repository"
	"github.com/timmy/memeshare/internal/store"
)

func newTestRecords(t *testing.T) *repository.RecordRepository {
	t.Helper()
	s := store.NewMemoryStore()
	t.Cleanup(func() { _ = s.Close() })
	return repository.NewRecordRepository(s)
}

func seedUploaded(t *testing.T, records *repository.RecordRepository, memes ...domain.UploadedMeme) {
	t.Helper()
	require.NoError(t, records.SaveUploaded(context.Background(), memes))
}

func uploaded(id, caption, uploader string, likes int, created time.Time) domain.UploadedMeme {
	return domain.UploadedMeme{
		ID:        id,
		ImageURL:  "https://i.ibb.co/" + id + ".png",
		Caption:   caption,
		Uploader:  uploader,
		Likes:     likes,
		CreatedAt: domain.NewTimestamp(created),
	}
}

// fakeSource is a TemplateSource returning fixed results.
type fakeSource struct {
	memes []domain.Meme
	err   error
	calls int
}

func (f *fakeSource) GetSourceID() string { return "fake" }

func (f *fakeSource) FetchTemplates(context.Context) ([]domain.Meme, error) {
	f.calls++
	return f.memes, f.err
}

func newRecordsFor(s store.Store) *repository.RecordRepository {
	return repository.NewRecordRepository(s)
}
