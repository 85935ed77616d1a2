// Package http provides a session-scoped HTTP implementation of
// mread.Fetcher. Cookies set by one request are sent on the next, so a
// warm-up visit can establish a session before the article is requested.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/fwojciec/mread"
	"golang.org/x/net/publicsuffix"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements mread.Fetcher at compile time.
var _ mread.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML with browser-like request headers over a single
// client whose cookie jar lives as long as the Fetcher.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *HostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each HTTP request.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithRateLimit spaces requests to the same host to at most rps per second.
// Zero or negative disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = NewHostLimiter(rps)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		limiter:   NewHostLimiter(0),
	}
	for _, opt := range opts {
		opt(f)
	}

	// cookiejar.New only fails on a nil options struct.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	f.client = &http.Client{
		Timeout: f.timeout,
		Jar:     jar,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Redirects are
// followed; any final status outside 2xx is an error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", mread.Errorf(mread.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	setHeaders(req.Header, rawURL, f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
