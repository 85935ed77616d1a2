// Package slog provides log/slog decorators for the mread services.
package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/mread"
)

var _ mread.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every fetch the chain makes. Successful fetches log at
// Debug; failures log at Warn with their error code so a failing source is
// visible without --debug.
type LoggingFetcher struct {
	next   mread.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next mread.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, rawURL string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", rawURL,
			"host", hostOf(rawURL),
			"duration", time.Since(begin),
		}
		if err != nil {
			f.logger.Warn("fetch failed", append(attrs, "code", mread.ErrorCode(err), "err", err)...)
			return
		}
		f.logger.Debug("fetch", append(attrs, "bytes", len(html))...)
	}(time.Now())
	return f.next.Fetch(ctx, rawURL)
}

func (f *LoggingFetcher) Close() (err error) {
	defer func() {
		f.logger.Debug("fetcher closed", "err", err)
	}()
	return f.next.Close()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
