// Package trafilatura enriches article metadata using go-trafilatura.
package trafilatura

import (
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/mread"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements mread.MetadataExtractor at compile time.
var _ mread.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to recover author, date and description.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMetadata runs trafilatura over rawHTML. pageURL may be empty.
func (e *Extractor) ExtractMetadata(rawHTML, pageURL string) (*mread.Metadata, error) {
	if rawHTML == "" {
		return nil, mread.Errorf(mread.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, mread.Errorf(mread.EINVALID, "invalid page URL: %v", err)
		}
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	meta := &mread.Metadata{
		Title:       strings.TrimSpace(result.Metadata.Title),
		Author:      strings.TrimSpace(result.Metadata.Author),
		Description: strings.TrimSpace(result.Metadata.Description),
	}
	if !result.Metadata.Date.IsZero() {
		meta.PublishedAt = result.Metadata.Date.UTC().Format(time.RFC3339)
	}
	return meta, nil
}
