package puzzleinput

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/internal/storage"
)

const body = "#####\n#S.E#\n#####\n"

// newServer serves body for the day-16 path when the session cookie matches.
func newServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		c, err := r.Cookie("session")
		if err != nil || c.Value != "secret" {
			http.Error(w, "please log in", http.StatusBadRequest)
			return
		}
		if r.URL.Path != "/2024/day/16/input" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetcherURL(t *testing.T) {
	f := New("https://example.test/", "")
	assert.Equal(t, "https://example.test/2024/day/16/input", f.URL(2024, 16))
}

func TestFetchWithoutStore(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)

	got, err := New(srv.URL, "secret").Fetch(context.Background(), 2024, 16)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
	assert.EqualValues(t, 1, hits)
}

func TestFetchErrors(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	ctx := context.Background()

	_, err := New(srv.URL, "").Fetch(ctx, 2024, 16)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.EqualValues(t, 0, hits, "no request without a session")

	_, err = New(srv.URL, "wrong").Fetch(ctx, 2024, 16)
	assert.ErrorIs(t, err, ErrFetchFailed)

	_, err = New(srv.URL, "secret").Fetch(ctx, 2024, 17)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetchCancelledContext(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL, "secret").Fetch(ctx, 2024, 16)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetchCachesInSQLite(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	ctx := context.Background()

	store, err := storage.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()

	f := New(srv.URL, "secret", WithStore(store))
	first, err := f.Fetch(ctx, 2024, 16)
	require.NoError(t, err)
	second, err := f.Fetch(ctx, 2024, 16)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, hits, "second fetch must be served from the cache")

	// A cached input needs neither network nor session.
	offline := New("http://127.0.0.1:1", "", WithStore(store))
	got, err := offline.Fetch(ctx, 2024, 16)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestFetchFailureIsNotCached(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	ctx := context.Background()

	store, err := storage.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = New(srv.URL, "wrong", WithStore(store)).Fetch(ctx, 2024, 16)
	require.ErrorIs(t, err, ErrFetchFailed)

	_, err = store.GetInput(ctx, New(srv.URL, "").URL(2024, 16))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
