package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"itemgen/core/storage"

	"gorm.io/gorm"
)

// Fetcher retrieves the raw bytes of a catalog.
type Fetcher interface {
	Fetch(ctx context.Context, locator string) ([]byte, error)
}

// Router dispatches a locator to the fetcher for its scheme:
// http(s)://, s3://bucket/key, db:table, file:// or a plain path.
type Router struct {
	cfg        Config
	httpClient *http.Client
	storage    storage.Client
	db         *gorm.DB
}

// Option configures a Router.
type Option func(*Router)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Router) { r.httpClient = c }
}

// WithStorage enables s3:// locators.
func WithStorage(c storage.Client) Option {
	return func(r *Router) { r.storage = c }
}

// WithDatabase enables db: locators.
func WithDatabase(db *gorm.DB) Option {
	return func(r *Router) { r.db = db }
}

// NewFetcher creates a Router.
func NewFetcher(cfg Config, opts ...Option) *Router {
	r := &Router{cfg: cfg, httpClient: &http.Client{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Scheme classifies a locator.
type Scheme string

const (
	SchemeHTTP     Scheme = "http"
	SchemeStorage  Scheme = "s3"
	SchemeDatabase Scheme = "db"
	SchemeFile     Scheme = "file"
)

// SchemeOf returns the scheme a locator is fetched with.
func SchemeOf(locator string) Scheme {
	switch {
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		return SchemeHTTP
	case storage.IsLocator(locator):
		return SchemeStorage
	case strings.HasPrefix(locator, "db:"):
		return SchemeDatabase
	default:
		return SchemeFile
	}
}

// Fetch reads the catalog at locator. The configured timeout covers the whole read.
func (r *Router) Fetch(ctx context.Context, locator string) ([]byte, error) {
	if locator == "" {
		return nil, &FetchError{Reason: "no source locator given"}
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout())
	defer cancel()

	var (
		data []byte
		err  error
	)
	switch SchemeOf(locator) {
	case SchemeHTTP:
		data, err = r.fetchHTTP(ctx, locator)
	case SchemeStorage:
		data, err = r.fetchStorage(ctx, locator)
	case SchemeDatabase:
		data, err = r.fetchDatabase(ctx, locator)
	default:
		data, err = r.fetchFile(ctx, locator)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *Router) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newFetchError(url, "invalid request", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", r.cfg.UserAgent)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, newFetchError(url, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			Locator:    url,
			Reason:     fmt.Sprintf("unexpected status %s", resp.Status),
			StatusCode: resp.StatusCode,
		}
	}

	return r.readAll(url, resp.Body)
}

func (r *Router) fetchFile(ctx context.Context, locator string) ([]byte, error) {
	path := strings.TrimPrefix(locator, "file://")

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newFetchError(locator, "file not found", err)
		}
		return nil, newFetchError(locator, "open failed", err)
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return nil, newFetchError(locator, "cancelled", err)
	}
	return r.readAll(locator, f)
}

func (r *Router) readAll(locator string, src io.Reader) ([]byte, error) {
	limit := r.cfg.maxBytes()
	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, newFetchError(locator, "read failed", err)
	}
	if int64(len(data)) > limit {
		return nil, &FetchError{Locator: locator, Reason: fmt.Sprintf("catalog exceeds %d bytes", limit)}
	}
	return data, nil
}
