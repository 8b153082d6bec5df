package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/timmy/memeshare/internal/logger"
)

// LoadJSON decodes the JSON document under key, returning def when the key
// is missing, empty, null or malformed. Only backend failures are errors.
// Parameters:
//   - ctx: context for the read.
//   - s: record store.
//   - key: record key.
//   - def: value returned when no usable document exists.
//
// Returns:
//   - T: decoded document or def.
//   - bool: true if a usable document was decoded.
//   - error: non-nil if the backend read fails.
func LoadJSON[T any](ctx context.Context, s Store, key string, def T) (T, bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return def, false, err
	}
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" || raw == "null" {
		return def, false, nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.With(logger.Fields{logger.FieldStoreKey: key}).
			Warn(ctx, "Ignoring malformed record: %v", err)
		return def, false, nil
	}
	return v, true, nil
}

// SaveJSON encodes v and stores it under key.
func SaveJSON(ctx context.Context, s Store, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.Set(ctx, key, string(b))
}

// LoadInt reads a non-negative integer counter. Missing, malformed or
// negative values read as 0.
func LoadInt(ctx context.Context, s Store, key string) (int, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		logger.With(logger.Fields{logger.FieldStoreKey: key}).
			Warn(ctx, "Ignoring malformed counter %q", raw)
		return 0, nil
	}
	return n, nil
}

// SaveInt stores a counter as its decimal string.
func SaveInt(ctx context.Context, s Store, key string, n int) error {
	return s.Set(ctx, key, strconv.Itoa(n))
}
