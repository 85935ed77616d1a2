// Package chain implements mread.Fetcher as an ordered list of fetch
// sources tried in turn until one returns a complete article.
package chain

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fwojciec/mread"
)

// MediumHomeURL is visited before the primary fetch to establish session
// cookies.
const MediumHomeURL = "https://medium.com/"

// Source is one named attempt in the chain.
type Source struct {
	// Name identifies the source in logs.
	Name string

	// Prefix is prepended to the article URL. Empty for a direct fetch.
	Prefix string

	// WarmUpURL, if set, is fetched first. Its failure is ignored.
	WarmUpURL string

	// DetectPaywall sends a truncated response on to the next source.
	DetectPaywall bool
}

// Primary returns the direct Medium source.
func Primary() Source {
	return Source{
		Name:          "primary",
		WarmUpURL:     MediumHomeURL,
		DetectPaywall: true,
	}
}

// Proxy returns a source that fetches through a read-proxy prefix.
func Proxy(name, prefix string) Source {
	return Source{Name: name, Prefix: prefix}
}

// DefaultSources returns the primary source followed by the Freedium proxies.
func DefaultSources() []Source {
	return []Source{
		Primary(),
		Proxy("freedium", "https://freedium.cfd/"),
		Proxy("freedium-mirror", "https://freedium-mirror.cfd/"),
	}
}

// Ensure Fetcher implements mread.Fetcher at compile time.
var _ mread.Fetcher = (*Fetcher)(nil)

// Fetcher tries each source in order and returns the first usable HTML.
// Each source issues one request, plus its warm-up if configured.
type Fetcher struct {
	fetcher  mread.Fetcher
	detector mread.PaywallDetector
	sources  []Source
	logger   *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithSources replaces DefaultSources.
func WithSources(sources []Source) Option {
	return func(f *Fetcher) {
		f.sources = sources
	}
}

// WithLogger sets the logger for attempt transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a chain over fetcher. detector classifies responses
// from sources with DetectPaywall set and may be nil.
func NewFetcher(fetcher mread.Fetcher, detector mread.PaywallDetector, opts ...Option) *Fetcher {
	f := &Fetcher{
		fetcher:  fetcher,
		detector: detector,
		sources:  DefaultSources(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the article HTML from the first source that succeeds.
//
// A response classified as truncated is discarded and the next source is
// tried. When no source yields a complete article, Fetch returns an EFETCH
// error naming url and the last cause.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	lastErr := errors.New("no fetch sources configured")

	for i, src := range f.sources {
		if src.WarmUpURL != "" {
			f.logger.Debug("warming up session", "source", src.Name, "url", src.WarmUpURL)
			if _, err := f.fetcher.Fetch(ctx, src.WarmUpURL); err != nil {
				f.logger.Warn("warm-up failed, continuing", "source", src.Name, "err", err)
			}
		}

		target := src.Prefix + url
		f.logger.Debug("fetching article", "source", src.Name, "url", target)
		html, err := f.fetcher.Fetch(ctx, target)
		if err != nil {
			lastErr = err
			f.logger.Warn("source failed", "source", src.Name, "url", target, "err", err)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		last := i == len(f.sources)-1
		if src.DetectPaywall && f.detector != nil && !last && f.detector.IsTruncated(html) {
			f.logger.Info("article looks member-only or truncated, trying next source", "source", src.Name)
			lastErr = errors.New("article is member-only or truncated")
			continue
		}

		return html, nil
	}

	return "", mread.FetchError(url, lastErr)
}

// Close closes the underlying fetcher.
func (f *Fetcher) Close() error {
	return f.fetcher.Close()
}
