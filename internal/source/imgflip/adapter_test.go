package imgflip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_memes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchTemplates_Success(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"success":true,"data":{"memes":[
		{"id":"181913649","name":"Drake Hotline Bling","url":"https://i.imgflip.com/30b1gx.jpg","width":1200,"height":1200,"box_count":2},
		{"id":"87743020","name":"Two Buttons","url":"https://i.imgflip.com/1g8my4.jpg","width":600,"height":908,"box_count":3}
	]}}`)

	memes, err := NewAdapter(srv.URL, time.Second).FetchTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, memes, 2)
	assert.Equal(t, "181913649", memes[0].ID)
	assert.Equal(t, "Two Buttons", memes[1].Name)
	assert.Equal(t, 3, memes[1].BoxCount)
}

func TestFetchTemplates_UnsuccessfulIsEmpty(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"success":false,"error_message":"rate limited"}`)

	memes, err := NewAdapter(srv.URL, time.Second).FetchTemplates(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, memes)
	assert.Empty(t, memes)
}

func TestFetchTemplates_HTTPError(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, `{}`)

	_, err := NewAdapter(srv.URL, time.Second).FetchTemplates(context.Background())
	assert.Error(t, err)
}

func TestFetchTemplates_TransportError(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	_, err := NewAdapter(url, time.Second).FetchTemplates(context.Background())
	assert.Error(t, err)
}

func TestGetSourceID(t *testing.T) {
	assert.Equal(t, "imgflip", NewAdapter("", 0).GetSourceID())
}
