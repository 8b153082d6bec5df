package repository

import (
	"context"

	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/store"
)

// RecordRepository reads and writes the typed records kept in a Store.
// Every method touches exactly one key.
type RecordRepository struct {
	store store.Store
}

// NewRecordRepository creates a new RecordRepository.
// Parameters:
//   - s: record store backend.
//
// Returns:
//   - *RecordRepository: repository bound to s.
func NewRecordRepository(s store.Store) *RecordRepository {
	return &RecordRepository{store: s}
}

// ListUploaded returns the uploaded-memes collection, or an empty slice.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//
// Returns:
//   - []domain.UploadedMeme: stored collection in insertion order.
//   - error: non-nil if the backend read fails.
func (r *RecordRepository) ListUploaded(ctx context.Context) ([]domain.UploadedMeme, error) {
	memes, _, err := store.LoadJSON(ctx, r.store, store.KeyUploadedMemes, []domain.UploadedMeme{})
	if memes == nil {
		memes = []domain.UploadedMeme{}
	}
	return memes, err
}

// SaveUploaded overwrites the uploaded-memes collection.
func (r *RecordRepository) SaveUploaded(ctx context.Context, memes []domain.UploadedMeme) error {
	return store.SaveJSON(ctx, r.store, store.KeyUploadedMemes, memes)
}

// AppendUploaded adds meme to the end of the collection.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - meme: record to append.
//
// Returns:
//   - error: non-nil if the read or write fails.
func (r *RecordRepository) AppendUploaded(ctx context.Context, meme domain.UploadedMeme) error {
	memes, err := r.ListUploaded(ctx)
	if err != nil {
		return err
	}
	return r.SaveUploaded(ctx, append(memes, meme))
}

// GetLikes returns the like counter for memeID, 0 if unset.
func (r *RecordRepository) GetLikes(ctx context.Context, memeID string) (int, error) {
	return store.LoadInt(ctx, r.store, store.LikesKey(memeID))
}

// SetLikes stores the like counter for memeID.
func (r *RecordRepository) SetLikes(ctx context.Context, memeID string, likes int) error {
	return store.SaveInt(ctx, r.store, store.LikesKey(memeID), likes)
}

// ListComments returns the comments for memeID in submission order.
func (r *RecordRepository) ListComments(ctx context.Context, memeID string) ([]domain.Comment, error) {
	comments, _, err := store.LoadJSON(ctx, r.store, store.CommentsKey(memeID), []domain.Comment{})
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, err
}

// SaveComments overwrites the comment sequence for memeID.
func (r *RecordRepository) SaveComments(ctx context.Context, memeID string, comments []domain.Comment) error {
	return store.SaveJSON(ctx, r.store, store.CommentsKey(memeID), comments)
}

// GetProfile returns the stored profile, or the default profile.
func (r *RecordRepository) GetProfile(ctx context.Context) (domain.UserProfile, error) {
	profile, _, err := store.LoadJSON(ctx, r.store, store.KeyUserProfile, domain.DefaultProfile())
	return profile, err
}

// SaveProfile replaces the stored profile.
func (r *RecordRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	return store.SaveJSON(ctx, r.store, store.KeyUserProfile, profile)
}

// ListLiked returns the identifiers of memes liked from this deployment.
func (r *RecordRepository) ListLiked(ctx context.Context) ([]string, error) {
	ids, _, err := store.LoadJSON(ctx, r.store, store.KeyLikedMemes, []string{})
	if ids == nil {
		ids = []string{}
	}
	return ids, err
}

// SaveLiked overwrites the liked identifiers.
func (r *RecordRepository) SaveLiked(ctx context.Context, ids []string) error {
	return store.SaveJSON(ctx, r.store, store.KeyLikedMemes, ids)
}
