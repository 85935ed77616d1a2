// Package rod provides a headless-browser implementation of mread.Fetcher
// for pages that only render their article client-side.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/mread"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page load.
const DefaultFetchTimeout = 30 * time.Second

// statusWait is how long Fetch waits after the load event for the document
// response to be delivered.
const statusWait = time.Second

// Ensure Fetcher implements mread.Fetcher at compile time.
var _ mread.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation. Pages
// share one browser, so cookies set by a warm-up visit carry over.
type Fetcher struct {
	timeout   time.Duration
	userAgent string

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for each page load.
// Defaults to DefaultFetchTimeout if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser's user agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.mu.Lock()
	browser, closed := f.browser, f.closed
	f.mu.Unlock()
	if closed {
		return "", mread.Errorf(mread.EINVALID, "fetcher is closed")
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", err
		}
	}

	// The first document response is the page itself; redirects are
	// reported on request events, so its status is the final one.
	status := make(chan int, 1)
	go page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status <- e.Response.Status
		return true
	})()

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	select {
	case code := <-status:
		if code < 200 || code >= 300 {
			return "", fmt.Errorf("HTTP %d for %s", code, url)
		}
	case <-time.After(statusWait):
		// No document response seen (data: or cached pages); trust the load.
	}

	return page.HTML()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	err := f.browser.Close()
	f.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.launcher.PID()
}
