package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mread"
)

// siteName is the generic title Medium serves on pages without an article.
const siteName = "medium"

// minTitleChars is the length a heading or <title> must exceed to be used.
const minTitleChars = 5

// Ensure MetaExtractor implements mread.MetadataExtractor at compile time.
var _ mread.MetadataExtractor = (*MetaExtractor)(nil)

// MetaExtractor reads title, author, description and image from <meta> and
// <link> tags, with heading fallbacks for the title.
type MetaExtractor struct{}

// NewMetaExtractor creates a new MetaExtractor.
func NewMetaExtractor() *MetaExtractor {
	return &MetaExtractor{}
}

// ExtractMetadata parses rawHTML and returns its page-level metadata.
func (e *MetaExtractor) ExtractMetadata(rawHTML, _ string) (*mread.Metadata, error) {
	doc, err := parseDocument(rawHTML)
	if err != nil {
		return nil, err
	}
	return extractMeta(doc), nil
}

func extractMeta(doc *goquery.Document) *mread.Metadata {
	meta := &mread.Metadata{
		Title:       metaTitle(doc),
		Description: attrOf(doc, `meta[property="og:description"]`, "content"),
		Image:       attrOf(doc, `meta[property="og:image"]`, "content"),
	}

	meta.Author = attrOf(doc, `meta[name="author"]`, "content")
	if author := attrOf(doc, `link[rel~="author"]`, "title"); author != "" {
		meta.Author = author
	}

	return meta
}

// metaTitle resolves the title: Open Graph, Twitter card, a post-title
// heading, then <title>.
func metaTitle(doc *goquery.Document) string {
	if title := attrOf(doc, `meta[property="og:title"]`, "content"); title != "" && !isSiteName(title) {
		return title
	}
	if title := attrOf(doc, `meta[name="twitter:title"]`, "content"); title != "" && !isSiteName(title) {
		return title
	}

	var heading string
	doc.Find("h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) <= minTitleChars || isSiteName(text) {
			return true
		}
		testID, _ := s.Attr("data-testid")
		class, _ := s.Attr("class")
		if testID != "" || strings.Contains(class, "postTitle") {
			heading = text
			return false
		}
		return true
	})
	if heading != "" {
		return heading
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if utf8.RuneCountInString(title) > minTitleChars && !isSiteName(title) {
		return title
	}
	return ""
}

// headingStoplist holds generic headings never used as an article title.
var headingStoplist = map[string]bool{
	"medium":  true,
	"home":    true,
	"about":   true,
	"sign in": true,
	"sign up": true,
}

// headingTitle returns the first <h1> that looks like an article title.
func headingTitle(doc *goquery.Document) string {
	var title string
	doc.Find("h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) > minTitleChars && !headingStoplist[strings.ToLower(text)] {
			title = text
			return false
		}
		return true
	})
	return title
}

// attrOf returns the trimmed attribute of the first element matching selector.
func attrOf(doc *goquery.Document, selector, attr string) string {
	v, _ := doc.Find(selector).First().Attr(attr)
	return strings.TrimSpace(v)
}

func isSiteName(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), siteName)
}
