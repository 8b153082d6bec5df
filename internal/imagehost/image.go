package imagehost

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Image is an uploaded file whose header decoded as a supported format.
type Image struct {
	Filename    string
	Data        []byte
	Format      string // jpeg, png, gif, webp, bmp
	ContentType string
	Width       int
	Height      int
}

// Size returns the file size in bytes.
func (img *Image) Size() int64 {
	return int64(len(img.Data))
}

// Ext returns the file extension for the decoded format.
func (img *Image) Ext() string {
	if img.Format == "jpeg" {
		return ".jpg"
	}
	return "." + img.Format
}

// NewImage validates data by decoding its header.
// Parameters:
//   - filename: client-supplied file name; only used for display.
//   - data: full file contents.
//
// Returns:
//   - *Image: validated image with detected format and dimensions.
//   - error: ErrNoImage for empty data, ErrInvalidImage if undecodable.
func NewImage(filename string, data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if filename == "" {
		filename = "upload." + format
	}
	return &Image{
		Filename:    filepath.Base(filename),
		Data:        data,
		Format:      format,
		ContentType: "image/" + strings.ToLower(format),
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}
