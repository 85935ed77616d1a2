package mread

import "context"

// ArticleStore persists rendered documents.
type ArticleStore interface {
	// Save writes content under a sanitized form of filename and returns
	// the final path. An existing file is never overwritten; a numeric
	// suffix is appended before the extension instead.
	Save(ctx context.Context, filename string, content string) (path string, err error)
}

// Opener opens a saved document for reading.
type Opener interface {
	Open(path string) error
}
