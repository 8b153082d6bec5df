package store

import (
	"context"
	"fmt"

	"github.com/timmy/memeshare/internal/config"
)

// NewStore creates the Store selected by cfg.Store.Driver.
// Parameters:
//   - ctx: context for connection checks.
//   - cfg: application configuration.
//
// Returns:
//   - Store: initialized backend.
//   - error: non-nil if the backend cannot be opened.
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Store.Driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite", "postgres":
		db, err := InitDB(cfg)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(db), nil
	case "redis":
		return DialRedis(ctx, &cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
