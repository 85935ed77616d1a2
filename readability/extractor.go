// Package readability enriches article metadata using go-readability.
package readability

import (
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/mread"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements mread.MetadataExtractor at compile time.
var _ mread.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to recover byline, date, excerpt and lead
// image from pages whose structured data is incomplete.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMetadata runs readability over rawHTML. pageURL resolves relative
// image URLs and may be empty.
func (e *Extractor) ExtractMetadata(rawHTML, pageURL string) (*mread.Metadata, error) {
	if rawHTML == "" {
		return nil, mread.Errorf(mread.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, mread.Errorf(mread.EINVALID, "invalid page URL: %v", err)
		}
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, err
	}

	meta := &mread.Metadata{
		Title:       strings.TrimSpace(article.Title),
		Author:      strings.TrimSpace(article.Byline),
		Description: strings.TrimSpace(article.Excerpt),
		Image:       strings.TrimSpace(article.Image),
	}
	if article.PublishedTime != nil {
		meta.PublishedAt = article.PublishedTime.UTC().Format(time.RFC3339)
	}
	return meta, nil
}
