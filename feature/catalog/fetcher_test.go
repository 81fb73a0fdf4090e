package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"itemgen/feature/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[{"id":1,"name":"stick","stackSize":64},{"id":5,"name":"diamond_pickaxe","stackSize":1}]`

func TestSchemeOf(t *testing.T) {
	tests := []struct {
		locator string
		want    catalog.Scheme
	}{
		{"https://raw.githubusercontent.com/PrismarineJS/minecraft-data/master/data/pc/1.15.2/items.json", catalog.SchemeHTTP},
		{"http://localhost:8080/items.json", catalog.SchemeHTTP},
		{"s3://gamedata/items.json", catalog.SchemeStorage},
		{"db:items", catalog.SchemeDatabase},
		{"file:///tmp/items.json", catalog.SchemeFile},
		{"testdata/items.json", catalog.SchemeFile},
	}

	for _, tt := range tests {
		t.Run(tt.locator, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.SchemeOf(tt.locator))
		})
	}
}

func TestFetch_HTTP(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	f := catalog.NewFetcher(catalog.Config{TimeoutSeconds: 5, UserAgent: "itemgen-test"})
	data, err := f.Fetch(context.Background(), srv.URL+"/items.json")
	require.NoError(t, err)
	assert.Equal(t, sample, string(data))
	assert.Equal(t, "itemgen-test", gotAgent)
}

func TestFetch_HTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	f := catalog.NewFetcher(catalog.Config{TimeoutSeconds: 5})
	_, err := f.Fetch(context.Background(), srv.URL+"/missing.json")
	require.Error(t, err)

	var fetchErr *catalog.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.False(t, fetchErr.Timeout())
	assert.Equal(t, "fetch", fetchErr.Kind())
}

func TestFetch_HTTPTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	f := catalog.NewFetcher(catalog.Config{TimeoutSeconds: 30})
	_, err := f.Fetch(ctx, srv.URL)
	require.Error(t, err)

	var fetchErr *catalog.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.True(t, fetchErr.Timeout())
	assert.Equal(t, "timed out", fetchErr.Reason)
}

func TestFetch_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	f := catalog.NewFetcher(catalog.Config{TimeoutSeconds: 5, MaxBytes: 10})
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 10 bytes")
}

func TestFetch_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f := catalog.NewFetcher(catalog.Config{})

	t.Run("PlainPath", func(t *testing.T) {
		data, err := f.Fetch(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, sample, string(data))
	})

	t.Run("FileURL", func(t *testing.T) {
		data, err := f.Fetch(context.Background(), "file://"+path)
		require.NoError(t, err)
		assert.Equal(t, sample, string(data))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), filepath.Join(dir, "missing.json"))
		require.Error(t, err)

		var fetchErr *catalog.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, "file not found", fetchErr.Reason)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestFetch_EmptyLocator(t *testing.T) {
	_, err := catalog.NewFetcher(catalog.Config{}).Fetch(context.Background(), "")
	var fetchErr *catalog.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, err.Error(), "no source locator")
}

func TestFetch_UnconfiguredBackends(t *testing.T) {
	f := catalog.NewFetcher(catalog.Config{})

	_, err := f.Fetch(context.Background(), "s3://gamedata/items.json")
	assert.ErrorContains(t, err, "object storage is not configured")

	_, err = f.Fetch(context.Background(), "db:items")
	assert.ErrorContains(t, err, "database is not configured")
}
