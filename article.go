package mread

// DefaultTitle is used when no title can be derived from the page or URL.
const DefaultTitle = "Medium Article"

// Article is the normalized result of extracting a page.
// It is built once per extraction and consumed once by a Renderer.
type Article struct {
	// URL is the page the article was extracted from.
	URL string `json:"url"`

	// Title is never empty in a successfully parsed article.
	Title string `json:"title"`

	Author string `json:"author,omitempty"`

	// PublishedAt is kept as published (usually ISO-8601) and only
	// reformatted at render time.
	PublishedAt string `json:"publishedAt,omitempty"`

	// Body is sanitized HTML or, when only structured data supplied it,
	// plain narrative text. Required.
	Body string `json:"body"`

	Description string `json:"description,omitempty"`

	// Image is an absolute URL.
	Image string `json:"image,omitempty"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Body == "" {
		return ErrNoArticleBody
	}
	return nil
}

// Metadata holds page-level fields that may come from any metadata source.
// Every field is optional.
type Metadata struct {
	Title       string
	Author      string
	PublishedAt string
	Description string
	Image       string
}

// Parser turns raw page HTML into an Article.
type Parser interface {
	// Parse extracts an article from html. pageURL is used for fallbacks
	// and may be empty. Returns EEXTRACT if no body could be extracted.
	Parse(html, pageURL string) (*Article, error)
}

// MetadataExtractor pulls page-level metadata from raw HTML.
type MetadataExtractor interface {
	ExtractMetadata(html, pageURL string) (*Metadata, error)
}

// Renderer turns an Article into a standalone document.
type Renderer interface {
	Render(article *Article) (string, error)
}

// Converter turns article body markup into Markdown. Relative links and
// image sources are resolved against pageURL.
type Converter interface {
	Convert(html, pageURL string) (string, error)
}
