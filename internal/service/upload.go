package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/imagehost"
	"github.com/timmy/memeshare/internal/logger"
	"github.com/timmy/memeshare/internal/repository"
)

// UploadRequest is a user-submitted image with its caption.
type UploadRequest struct {
	Filename string
	Data     []byte
	Caption  string
	Uploader string // empty uses the profile name
}

// UploadService hosts images and records them as uploaded memes.
type UploadService struct {
	host    imagehost.ImageHost
	records *repository.RecordRepository
	now     func() time.Time
	newID   func() string
}

// NewUploadService creates a new upload service.
// Parameters:
//   - host: image host the file is sent to.
//   - records: record repository.
//
// Returns:
//   - *UploadService: initialized service.
func NewUploadService(host imagehost.ImageHost, records *repository.RecordRepository) *UploadService {
	return &UploadService{
		host:    host,
		records: records,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Upload validates the image, sends it to the host and appends the resulting
// meme to the uploaded-memes collection with zero likes.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - req: uploaded file, caption and optional uploader.
//
// Returns:
//   - *domain.UploadedMeme: stored record.
//   - error: imagehost.ErrNoImage or ErrInvalidImage for bad input,
//     imagehost.ErrUploadRejected when the host refuses, or a store error.
func (s *UploadService) Upload(ctx context.Context, req UploadRequest) (*domain.UploadedMeme, error) {
	start := time.Now()

	img, err := imagehost.NewImage(req.Filename, req.Data)
	if err != nil {
		return nil, err
	}

	uploader := strings.TrimSpace(req.Uploader)
	if uploader == "" {
		profile, err := s.records.GetProfile(ctx)
		if err != nil {
			return nil, err
		}
		uploader = profile.Name
	}

	ctx = logger.WithFields(ctx, logger.Fields{
		logger.FieldProvider: s.host.Name(),
		"uploader":           uploader,
	})

	url, err := s.host.Upload(ctx, img)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Error("Upload failed")
		return nil, fmt.Errorf("upload to %s: %w", s.host.Name(), err)
	}

	meme := domain.UploadedMeme{
		ID:        s.newID(),
		ImageURL:  url,
		Caption:   req.Caption,
		CreatedAt: domain.NewTimestamp(s.now()),
		Uploader:  uploader,
		Likes:     0,
	}
	if err := s.records.AppendUploaded(ctx, meme); err != nil {
		if d, ok := s.host.(imagehost.Discarder); ok {
			if delErr := d.Discard(ctx, url); delErr != nil {
				logger.FromContext(ctx).WithError(delErr).Warn("Failed to discard hosted image after save error")
			}
		}
		return nil, err
	}

	logger.With(logger.Fields{logger.FieldSize: img.Size()}).WithDuration(start).
		Info(ctx, "Meme uploaded")
	return &meme, nil
}
