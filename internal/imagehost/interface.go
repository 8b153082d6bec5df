package imagehost

import (
	"context"
	"errors"
)

var (
	// ErrNoImage is returned when an upload carries no file data.
	ErrNoImage = errors.New("no image selected")

	// ErrInvalidImage is returned when the file is not a decodable image.
	ErrInvalidImage = errors.New("file is not a supported image")

	// ErrUploadRejected is returned when the host answers success=false.
	ErrUploadRejected = errors.New("image host rejected the upload")

	// ErrHostUnavailable is returned when the host could not be reached.
	ErrHostUnavailable = errors.New("image host unavailable")
)

// ImageHost stores an image with a third-party host and returns its public URL.
type ImageHost interface {
	// Name identifies the host in logs.
	Name() string

	// Upload stores img and returns the URL it is served from.
	// Parameters:
	//   - ctx: context for cancellation and deadlines.
	//   - img: validated image.
	// Returns:
	//   - string: absolute URL of the hosted image.
	//   - error: non-nil if the host could not be reached or refused the image.
	Upload(ctx context.Context, img *Image) (string, error)
}

// Discarder is implemented by hosts that can remove an image they hosted.
// Callers use it to roll back an upload whose record could not be saved.
type Discarder interface {
	Discard(ctx context.Context, url string) error
}
