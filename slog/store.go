package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mread"
)

// Ensure LoggingStore implements mread.ArticleStore.
var _ mread.ArticleStore = (*LoggingStore)(nil)

// LoggingStore wraps an ArticleStore and logs each save.
type LoggingStore struct {
	next   mread.ArticleStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next mread.ArticleStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save delegates to the wrapped store.
func (s *LoggingStore) Save(ctx context.Context, filename, content string) (path string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save",
			"filename", filename,
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, filename, content)
}
