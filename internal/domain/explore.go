package domain

import (
	"fmt"
	"strings"
)

// Category is the explore page filter token.
// Values include CategoryAll, CategoryTrending, CategoryClassic, and CategoryRandom.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryTrending Category = "trending"
	CategoryClassic  Category = "classic"
	CategoryRandom   Category = "random"
)

// SortMode is the explore page ordering.
// Values include SortLatest and SortLikes.
type SortMode string

const (
	SortLatest SortMode = "latest"
	SortLikes  SortMode = "likes"
)

// ParseCategory converts a query token to a Category. Empty means all.
// Parameters:
//   - s: raw token.
//
// Returns:
//   - Category: parsed category.
//   - error: non-nil for unknown tokens.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CategoryAll, nil
	case CategoryAll, CategoryTrending, CategoryClassic, CategoryRandom:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// ParseSortMode converts a query token to a SortMode. Empty means latest.
// Parameters:
//   - s: raw token.
//
// Returns:
//   - SortMode: parsed sort mode.
//   - error: non-nil for unknown tokens.
func ParseSortMode(s string) (SortMode, error) {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return SortLatest, nil
	case SortLatest, SortLikes:
		return m, nil
	default:
		return "", fmt.Errorf("unknown sort mode %q", s)
	}
}
