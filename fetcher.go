package mread

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may share a session (cookies, connections) across calls.
type Fetcher interface {
	// Fetch requests the URL and returns the response body as HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// PaywallDetector classifies fetched HTML as member-only or truncated.
// It is a heuristic: both false positives and false negatives are expected.
type PaywallDetector interface {
	IsTruncated(html string) bool
}
