package imagehost

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/timmy/memeshare/internal/logger"
	"github.com/timmy/memeshare/internal/storage"
)

// ObjectStore hosts images in an S3-compatible bucket.
type ObjectStore struct {
	storage storage.ObjectStorage
	prefix  string
	now     func() time.Time
}

// NewObjectStore creates an image host backed by object storage.
// Parameters:
//   - objectStorage: bucket client.
//   - prefix: key prefix for uploaded images.
//
// Returns:
//   - *ObjectStore: initialized host.
func NewObjectStore(objectStorage storage.ObjectStorage, prefix string) *ObjectStore {
	return &ObjectStore{storage: objectStorage, prefix: prefix, now: time.Now}
}

// Name identifies the host in logs.
func (h *ObjectStore) Name() string {
	return "s3"
}

// Upload stores img under prefix/yyyy/mm/<uuid><ext> and returns its public URL.
func (h *ObjectStore) Upload(ctx context.Context, img *Image) (string, error) {
	key := path.Join(h.prefix, h.now().UTC().Format("2006/01"), uuid.NewString()+img.Ext())
	ctx = logger.WithFields(ctx, logger.Fields{
		logger.FieldProvider: h.Name(),
		"object_key":         key,
	})

	if err := h.storage.Upload(ctx, key, bytes.NewReader(img.Data), img.Size(), img.ContentType); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHostUnavailable, err)
	}

	logger.With(logger.Fields{logger.FieldSize: img.Size()}).Info(ctx, "Image uploaded to object storage")
	return h.storage.GetURL(key), nil
}

// Discard deletes the object behind a URL returned by Upload.
func (h *ObjectStore) Discard(ctx context.Context, url string) error {
	base := h.storage.GetURL("")
	if !strings.HasPrefix(url, base) {
		return fmt.Errorf("url %q is not hosted under %q", url, base)
	}
	return h.storage.Delete(ctx, strings.TrimPrefix(url, base))
}
