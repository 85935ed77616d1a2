//go:build integration

package rod_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/mread"
	"github.com/fwojciec/mread/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements mread.Fetcher.
var _ mread.Fetcher = (*rod.Fetcher)(nil)

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	// Server that delays response
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Don't respond - let context timeout
		select {}
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err = fetcher.Fetch(ctx, srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_Fetch_ReturnsScriptRenderedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html><head><title>Story</title></head>
<body>
<div id="root"></div>
<script>
var body = document.createElement('div');
body.setAttribute('data-testid', 'postBody');
body.innerHTML = '<p>Hydrated paragraph</p>';
document.getElementById('root').appendChild(body);
</script>
</body></html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, `<div data-testid="postBody"><p>Hydrated paragraph</p></div>`)
}

func TestFetcher_Fetch_TimeoutTriggersOnSlowPage(t *testing.T) {
	t.Parallel()

	// Server that delays longer than the fetch timeout
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>delayed</body></html>`))
	}))
	defer srv.Close()

	// Use a short timeout for testing (100ms, shorter than server delay)
	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(100 * time.Millisecond))
	require.NoError(t, err)
	defer fetcher.Close()

	ctx := context.Background()
	_, err = fetcher.Fetch(ctx, srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetcher_Fetch_SendsUserAgent(t *testing.T) {
	t.Parallel()

	agents := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case agents <- r.UserAgent():
		default:
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><div data-testid="postBody">ok</div></body></html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher(rod.WithUserAgent("mread-test/1.0"))
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, `data-testid="postBody"`)
	assert.Equal(t, "mread-test/1.0", <-agents)
}

func TestFetcher_Fetch_RejectsNonSuccessStatus(t *testing.T) {
	t.Parallel()

	for _, code := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusBadGateway} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.WriteHeader(code)
				_, _ = w.Write([]byte(`<html><body><h1>Blocked</h1></body></html>`))
			}))
			defer srv.Close()

			fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(10 * time.Second))
			require.NoError(t, err)
			defer fetcher.Close()

			html, err := fetcher.Fetch(context.Background(), srv.URL)

			require.Error(t, err)
			assert.Empty(t, html)
			assert.Contains(t, err.Error(), fmt.Sprintf("HTTP %d", code))
		})
	}
}

func TestFetcher_Fetch_FollowsRedirectToSuccess(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>Moved here</p></body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL+"/old")

	require.NoError(t, err)
	assert.Contains(t, html, "Moved here")
}
