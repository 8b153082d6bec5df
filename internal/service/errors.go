package service

import "errors"

var (
	// ErrEmptyComment is returned when a comment has no text after trimming.
	ErrEmptyComment = errors.New("comment text is empty")

	// ErrMemeNotFound is returned when a template or uploaded meme does not exist.
	ErrMemeNotFound = errors.New("meme not found")

	// ErrCaptionUnavailable is returned when no caption could be generated.
	ErrCaptionUnavailable = errors.New("caption generation unavailable")

	// ErrInvalidProfile is returned when a profile fails validation.
	ErrInvalidProfile = errors.New("invalid profile")
)
