package storage

import (
	"context"
	"io"
)

// ObjectStorage defines the object storage operations used by the s3 image host.
type ObjectStorage interface {
	// Upload stores an object under key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// GetURL returns the public URL for key.
	GetURL(key string) string

	// Delete removes the object under key.
	Delete(ctx context.Context, key string) error
}
