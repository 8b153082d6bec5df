package imagehost

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNewImage(t *testing.T) {
	img, err := NewImage("dir/cat.png", pngBytes(t, 4, 3))
	require.NoError(t, err)
	assert.Equal(t, "cat.png", img.Filename)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 3, img.Height)
	assert.Equal(t, ".png", img.Ext())

	_, err = NewImage("empty.png", nil)
	assert.ErrorIs(t, err, ErrNoImage)

	_, err = NewImage("notes.txt", []byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestNewImage_DefaultFilename(t *testing.T) {
	img, err := NewImage("", pngBytes(t, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, "upload.png", img.Filename)
}

func TestImgBB_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/upload", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cat.png", header.Filename)
		body, _ := io.ReadAll(file)
		assert.NotEmpty(t, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"status":200,"data":{"url":"https://i.ibb.co/xyz/cat.png"}}`))
	}))
	defer srv.Close()

	img, err := NewImage("cat.png", pngBytes(t, 2, 2))
	require.NoError(t, err)

	host := NewImgBB(&ImgBBConfig{BaseURL: srv.URL, APIKey: "test-key", Timeout: time.Second})
	url, err := host.Upload(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/xyz/cat.png", url)
}

func TestImgBB_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		errMsg string
	}{
		{
			name:   "success false",
			status: http.StatusOK,
			body:   `{"success":false}`,
		},
		{
			name:   "bad api key",
			status: http.StatusBadRequest,
			body:   `{"status_code":400,"error":{"message":"Invalid API v1 key."},"status_txt":"Bad Request"}`,
			errMsg: "Invalid API v1 key.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			img, err := NewImage("cat.png", pngBytes(t, 1, 1))
			require.NoError(t, err)

			_, err = NewImgBB(&ImgBBConfig{BaseURL: srv.URL}).Upload(context.Background(), img)
			assert.ErrorIs(t, err, ErrUploadRejected)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

type fakeObjectStorage struct {
	keys        []string
	deleted     []string
	contentType string
	size        int64
	err         error
}

func (f *fakeObjectStorage) Upload(_ context.Context, key string, r io.Reader, size int64, contentType string) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.size = size
	f.contentType = contentType
	_, _ = io.Copy(io.Discard, r)
	return nil
}

func (f *fakeObjectStorage) GetURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (f *fakeObjectStorage) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func TestObjectStore_Upload(t *testing.T) {
	fake := &fakeObjectStorage{}
	host := NewObjectStore(fake, "uploads")
	host.now = func() time.Time { return time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC) }

	img, err := NewImage("cat.png", pngBytes(t, 2, 2))
	require.NoError(t, err)

	url, err := host.Upload(context.Background(), img)
	require.NoError(t, err)

	require.Len(t, fake.keys, 1)
	assert.True(t, strings.HasPrefix(fake.keys[0], "uploads/2025/02/"), fake.keys[0])
	assert.True(t, strings.HasSuffix(fake.keys[0], ".png"), fake.keys[0])
	assert.Equal(t, "https://cdn.example.com/"+fake.keys[0], url)
	assert.Equal(t, "image/png", fake.contentType)
	assert.Equal(t, img.Size(), fake.size)
}

func TestObjectStore_UploadError(t *testing.T) {
	fake := &fakeObjectStorage{err: assert.AnError}
	img, err := NewImage("cat.png", pngBytes(t, 1, 1))
	require.NoError(t, err)

	_, err = NewObjectStore(fake, "uploads").Upload(context.Background(), img)
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, err, ErrHostUnavailable)
}

func TestObjectStore_Discard(t *testing.T) {
	fake := &fakeObjectStorage{}
	host := NewObjectStore(fake, "uploads")
	img, err := NewImage("cat.png", pngBytes(t, 1, 1))
	require.NoError(t, err)

	url, err := host.Upload(context.Background(), img)
	require.NoError(t, err)

	require.NoError(t, host.Discard(context.Background(), url))
	assert.Equal(t, fake.keys, fake.deleted)

	err = host.Discard(context.Background(), "https://elsewhere.example.com/x.png")
	assert.Error(t, err)
}

func TestImgBB_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	img, err := NewImage("cat.png", pngBytes(t, 1, 1))
	require.NoError(t, err)

	_, err = NewImgBB(&ImgBBConfig{BaseURL: url, Timeout: time.Second}).Upload(context.Background(), img)
	assert.ErrorIs(t, err, ErrHostUnavailable)
	assert.NotErrorIs(t, err, ErrUploadRejected)
}
