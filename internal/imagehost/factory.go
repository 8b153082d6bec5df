package imagehost

import (
	"fmt"

	"github.com/timmy/memeshare/internal/config"
	"github.com/timmy/memeshare/internal/storage"
)

// New creates the ImageHost selected by cfg.ImageHost.Provider.
// Parameters:
//   - cfg: application configuration.
//
// Returns:
//   - ImageHost: initialized host.
//   - error: non-nil for unknown providers or storage setup failures.
func New(cfg *config.Config) (ImageHost, error) {
	switch cfg.ImageHost.Provider {
	case "", "imgbb":
		return NewImgBB(&ImgBBConfig{
			BaseURL: cfg.ImageHost.BaseURL,
			APIKey:  cfg.ImageHost.APIKey,
			Timeout: cfg.ImageHost.Timeout,
		}), nil
	case "s3":
		objectStorage, err := storage.NewStorage(&cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		return NewObjectStore(objectStorage, cfg.Storage.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown image host provider %q", cfg.ImageHost.Provider)
	}
}
