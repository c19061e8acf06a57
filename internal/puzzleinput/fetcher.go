// Package puzzleinput downloads maze inputs from the puzzle site and caches
// them so a given input is requested at most once.
package puzzleinput

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mazepath/internal/storage"
)

var (
	// ErrNoSession is returned when a download is needed but no session cookie is set.
	ErrNoSession = errors.New("puzzleinput: session cookie is not set")
	// ErrFetchFailed is returned for transport failures and non-200 responses.
	ErrFetchFailed = errors.New("puzzleinput: fetch failed")
)

// DefaultTimeout bounds a single download.
const DefaultTimeout = 30 * time.Second

// Store caches downloaded bodies by URL. *storage.Store satisfies it;
// GetInput must return storage.ErrNotFound on a miss.
type Store interface {
	GetInput(ctx context.Context, url string) ([]byte, error)
	PutInput(ctx context.Context, url string, body []byte) error
}

// Fetcher downloads puzzle inputs.
type Fetcher struct {
	baseURL string
	session string
	client  *http.Client
	store   Store
	logger  *log.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithStore enables caching. A nil store disables it.
func WithStore(s Store) Option {
	return func(f *Fetcher) { f.store = s }
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithLogger sets the logger used for cache hit/miss reporting.
func WithLogger(l *log.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// New returns a Fetcher for baseURL (for example "https://adventofcode.com").
// session may be empty; it is only required when a download happens.
func New(baseURL, session string, opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
		client:  &http.Client{Timeout: DefaultTimeout},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the input address for a puzzle day.
func (f *Fetcher) URL(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", f.baseURL, year, day)
}

// Fetch returns the input for year/day, from the cache when possible.
// A failing cache read is logged and treated as a miss; a failing cache
// write is logged and does not fail the fetch.
func (f *Fetcher) Fetch(ctx context.Context, year, day int) ([]byte, error) {
	url := f.URL(year, day)

	if f.store != nil {
		body, err := f.store.GetInput(ctx, url)
		switch {
		case err == nil:
			f.logger.Debug("input cache hit", "url", url, "bytes", len(body))
			return body, nil
		case errors.Is(err, storage.ErrNotFound):
			f.logger.Debug("input cache miss", "url", url)
		default:
			f.logger.Warn("input cache read failed", "url", url, "error", err)
		}
	}

	body, err := f.download(ctx, url)
	if err != nil {
		return nil, err
	}

	if f.store != nil {
		if err := f.store.PutInput(ctx, url, body); err != nil {
			f.logger.Warn("input cache write failed", "url", url, "error", err)
		}
	}
	return body, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	if f.session == "" {
		return nil, ErrNoSession
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: f.session})

	f.logger.Info("downloading input", "url", url)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetchFailed, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}
	return body, nil
}
