package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Meme represents a template fetched from the external template provider.
// Templates are read-only; this service never persists them.
type Meme struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	BoxCount int    `json:"box_count,omitempty"`
}

// Timestamp is a creation time that decodes from either epoch milliseconds
// or an RFC3339 string. Anything else decodes as the zero time.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t in UTC, truncated to millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Millisecond).UTC()}
}

// MarshalJSON implements json.Marshaler.
// Parameters: none.
// Returns:
//   - []byte: RFC3339 string, or null for the zero time.
//   - error: non-nil if encoding fails.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
// Parameters:
//   - data: raw JSON value.
//
// Returns:
//   - error: always nil; unparseable values become the zero time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = ParseTimestamp(strings.TrimSpace(string(data)))
	return nil
}

// maxEpochMillis is the largest epoch offset accepted, +/-100,000,000 days.
const maxEpochMillis = 8.64e15

// ParseTimestamp parses a raw JSON timestamp token.
func ParseTimestamp(raw string) time.Time {
	if raw == "" || raw == "null" {
		return time.Time{}
	}
	if ms, err := strconv.ParseFloat(raw, 64); err == nil {
		if math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
			return time.Time{}
		}
		return time.UnixMilli(int64(ms)).UTC()
	}
	s, err := strconv.Unquote(raw)
	if err != nil {
		return time.Time{}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if math.Abs(float64(ms)) > maxEpochMillis {
			return time.Time{}
		}
		return time.UnixMilli(ms).UTC()
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000Z07:00", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}

// UploadedMeme is a user-submitted image record persisted under the
// uploaded-memes key.
type UploadedMeme struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	Caption   string    `json:"caption"`
	CreatedAt Timestamp `json:"createdAt"`
	Uploader  string    `json:"uploader,omitempty"`
	Likes     int       `json:"likes"`
}

// uploadedMemeJSON mirrors UploadedMeme and additionally accepts the
// uploadedAt alias written by older clients.
type uploadedMemeJSON struct {
	ID         string     `json:"id"`
	ImageURL   string     `json:"imageUrl"`
	Caption    string     `json:"caption"`
	CreatedAt  *Timestamp `json:"createdAt"`
	UploadedAt *Timestamp `json:"uploadedAt"`
	Uploader   string     `json:"uploader"`
	Likes      int        `json:"likes"`
}

// UnmarshalJSON implements json.Unmarshaler.
// Parameters:
//   - data: JSON object for a single uploaded meme.
//
// Returns:
//   - error: non-nil if data is not a JSON object.
func (m *UploadedMeme) UnmarshalJSON(data []byte) error {
	var raw uploadedMemeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = UploadedMeme{
		ID:       raw.ID,
		ImageURL: raw.ImageURL,
		Caption:  raw.Caption,
		Uploader: raw.Uploader,
		Likes:    raw.Likes,
	}
	switch {
	case raw.CreatedAt != nil && !raw.CreatedAt.IsZero():
		m.CreatedAt = *raw.CreatedAt
	case raw.UploadedAt != nil:
		m.CreatedAt = *raw.UploadedAt
	}
	if m.Likes < 0 {
		m.Likes = 0
	}
	return nil
}

// MemeListResponse is the response body for meme collection endpoints.
type MemeListResponse struct {
	Results []UploadedMeme `json:"results"`
	Total   int            `json:"total"`
}
