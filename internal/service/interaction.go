package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/logger"
	"github.com/timmy/memeshare/internal/repository"
)

// InteractionService handles likes and comments scoped to one meme identifier.
// Identifiers may belong to a template or an uploaded meme; neither is checked.
//
// Like and AddComment are read-modify-write on a single key with no locking:
// concurrent calls for the same meme can lose updates (last write wins).
type InteractionService struct {
	records *repository.RecordRepository
	now     func() time.Time
	newID   func() string
}

// NewInteractionService creates a new interaction service.
// Parameters:
//   - records: record repository.
//
// Returns:
//   - *InteractionService: initialized service.
func NewInteractionService(records *repository.RecordRepository) *InteractionService {
	return &InteractionService{
		records: records,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Like increments the like counter for memeID and returns the new count.
// When memeID is an uploaded meme its likes field is also incremented, and
// memeID is recorded once in the liked list. Each of those is a separate
// single-key write; only the counter write can fail the call.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - memeID: meme identifier.
//
// Returns:
//   - int: counter value after the increment.
//   - error: non-nil if the counter cannot be read or written.
func (s *InteractionService) Like(ctx context.Context, memeID string) (int, error) {
	ctx = logger.SetMemeID(ctx, memeID)

	likes, err := s.records.GetLikes(ctx, memeID)
	if err != nil {
		return 0, err
	}
	likes++
	if err := s.records.SetLikes(ctx, memeID, likes); err != nil {
		return 0, err
	}

	if err := s.syncUploaded(ctx, memeID); err != nil {
		logger.FromContext(ctx).WithError(err).Warn("Failed to sync likes into uploaded memes")
	}
	if err := s.markLiked(ctx, memeID); err != nil {
		logger.FromContext(ctx).WithError(err).Warn("Failed to record liked meme")
	}

	logger.CtxDebug(ctx, "Meme liked: likes=%d", likes)
	return likes, nil
}

// syncUploaded bumps the likes field of the uploaded meme with memeID, if any.
func (s *InteractionService) syncUploaded(ctx context.Context, memeID string) error {
	memes, err := s.records.ListUploaded(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(memes, func(m domain.UploadedMeme) bool { return m.ID == memeID })
	if i < 0 {
		return nil
	}
	memes[i].Likes++
	return s.records.SaveUploaded(ctx, memes)
}

func (s *InteractionService) markLiked(ctx context.Context, memeID string) error {
	ids, err := s.records.ListLiked(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(ids, memeID) {
		return nil
	}
	return s.records.SaveLiked(ctx, append(ids, memeID))
}

// AddComment appends a comment to memeID's comment sequence.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - memeID: meme identifier.
//   - text: comment body; stored as given when non-blank.
//
// Returns:
//   - *domain.Comment: stored comment.
//   - error: ErrEmptyComment for blank text, or a store error.
func (s *InteractionService) AddComment(ctx context.Context, memeID, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}
	ctx = logger.SetMemeID(ctx, memeID)

	comments, err := s.records.ListComments(ctx, memeID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:        s.newID(),
		MemeID:    memeID,
		Text:      text,
		Timestamp: s.now().UnixMilli(),
	}
	if err := s.records.SaveComments(ctx, memeID, append(comments, comment)); err != nil {
		return nil, err
	}

	logger.With(logger.Fields{logger.FieldComponent: "interaction"}).WithCount(len(comments)+1).Debug(ctx, "Comment added")
	return &comment, nil
}

// Summary returns the like counter and comments for memeID.
func (s *InteractionService) Summary(ctx context.Context, memeID string) (*domain.InteractionSummary, error) {
	likes, err := s.records.GetLikes(ctx, memeID)
	if err != nil {
		return nil, err
	}
	comments, err := s.records.ListComments(ctx, memeID)
	if err != nil {
		return nil, err
	}
	return &domain.InteractionSummary{MemeID: memeID, Likes: likes, Comments: comments}, nil
}
