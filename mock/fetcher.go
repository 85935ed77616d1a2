package mock

import (
	"context"

	"github.com/fwojciec/mread"
)

var _ mread.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of mread.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ mread.PaywallDetector = (*PaywallDetector)(nil)

// PaywallDetector is a mock implementation of mread.PaywallDetector.
type PaywallDetector struct {
	IsTruncatedFn func(html string) bool
}

func (d *PaywallDetector) IsTruncated(html string) bool {
	return d.IsTruncatedFn(html)
}
