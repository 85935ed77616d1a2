package mock

import "github.com/fwojciec/mread"

var _ mread.Parser = (*Parser)(nil)

// Parser is a mock implementation of mread.Parser.
type Parser struct {
	ParseFn func(html, pageURL string) (*mread.Article, error)
}

func (p *Parser) Parse(html, pageURL string) (*mread.Article, error) {
	return p.ParseFn(html, pageURL)
}

var _ mread.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of mread.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html, pageURL string) (*mread.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html, pageURL string) (*mread.Metadata, error) {
	return e.ExtractMetadataFn(html, pageURL)
}

var _ mread.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of mread.Renderer.
type Renderer struct {
	RenderFn func(article *mread.Article) (string, error)
}

func (r *Renderer) Render(article *mread.Article) (string, error) {
	return r.RenderFn(article)
}

var _ mread.Converter = (*Converter)(nil)

// Converter is a mock implementation of mread.Converter.
type Converter struct {
	ConvertFn func(html, pageURL string) (string, error)
}

func (c *Converter) Convert(html, pageURL string) (string, error) {
	return c.ConvertFn(html, pageURL)
}
