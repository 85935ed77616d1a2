package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/mread"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ensure Parser implements mread.Parser at compile time.
var _ mread.Parser = (*Parser)(nil)

// Parser assembles an Article from a page's JSON-LD, meta tags, headings,
// URL and body. For every field the first non-empty source wins.
type Parser struct {
	body     *BodyExtractor
	enricher mread.MetadataExtractor
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithThresholds sets the body length guards.
func WithThresholds(t Thresholds) ParserOption {
	return func(p *Parser) {
		p.body = NewBodyExtractor(t)
	}
}

// WithEnricher adds a generic metadata extractor consulted after JSON-LD
// and meta tags for author, date, description and image. It never
// supplies the title or body.
func WithEnricher(e mread.MetadataExtractor) ParserOption {
	return func(p *Parser) {
		p.enricher = e
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		body: NewBodyExtractor(DefaultThresholds()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts an article from rawHTML. Returns EEXTRACT if no body
// could be extracted, including when rawHTML is blank.
func (p *Parser) Parse(rawHTML, pageURL string) (*mread.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mread.ErrNoArticleBody
	}
	doc, err := parseDocument(rawHTML)
	if err != nil {
		return nil, err
	}

	article := &mread.Article{URL: pageURL}

	obj := mread.FindArticle(structuredData(doc))
	if obj != nil {
		article.Title = strings.TrimSpace(obj.Headline)
		article.Author = strings.TrimSpace(obj.Author.AsName())
		article.PublishedAt = firstNonEmpty(obj.DatePublished, obj.DateCreated)
		article.Description = strings.TrimSpace(obj.Description)
		article.Image = strings.TrimSpace(obj.Image.AsURL())
	}

	meta := extractMeta(doc)
	fill(&article.Title, meta.Title)
	fill(&article.Author, meta.Author)
	fill(&article.Description, meta.Description)
	fill(&article.Image, meta.Image)

	if p.enricher != nil {
		if extra, err := p.enricher.ExtractMetadata(rawHTML, pageURL); err == nil && extra != nil {
			fill(&article.Author, extra.Author)
			fill(&article.PublishedAt, extra.PublishedAt)
			fill(&article.Description, extra.Description)
			fill(&article.Image, extra.Image)
		}
	}

	fill(&article.Title, headingTitle(doc))

	if body, ok := p.body.Extract(doc, obj); ok {
		article.Body = body
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}

	fill(&article.Title, TitleFromURL(pageURL))
	fill(&article.Title, mread.DefaultTitle)

	return article, nil
}

// letterRun matches a maximal run of letters. Digits and punctuation start
// a new word, so "a1b2c3" title-cases to "A1B2C3".
var letterRun = regexp.MustCompile(`\pL+`)

// TitleFromURL derives a title from the last non-empty path segment of
// rawURL: hyphens become spaces and every run of letters is title-cased.
// Returns "" when the URL has no path.
func TitleFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	var last string
	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			last = part
		}
	}
	if last == "" {
		return ""
	}

	caser := cases.Title(language.Und)
	return letterRun.ReplaceAllStringFunc(strings.ReplaceAll(last, "-", " "), caser.String)
}

// fill sets *dst to src when *dst is empty.
func fill(dst *string, src string) {
	if *dst == "" {
		*dst = strings.TrimSpace(src)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

