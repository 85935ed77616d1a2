package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mread"
)

// Ensure LoggingParser implements mread.Parser.
var _ mread.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser and logs what was extracted.
type LoggingParser struct {
	next   mread.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next mread.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser.
func (p *LoggingParser) Parse(html, pageURL string) (article *mread.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", pageURL,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if article != nil {
			attrs = append(attrs,
				"title", article.Title,
				"author", article.Author,
				"published", article.PublishedAt,
				"body_bytes", len(article.Body),
			)
		}
		attrs = append(attrs, "err", err)
		p.logger.Debug("parse", attrs...)
	}(time.Now())
	return p.next.Parse(html, pageURL)
}
