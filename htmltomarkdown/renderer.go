package htmltomarkdown

import (
	"strings"

	"github.com/fwojciec/mread"
	"gopkg.in/yaml.v3"
)

// Ensure Renderer implements mread.Renderer at compile time.
var _ mread.Renderer = (*Renderer)(nil)

// frontmatter is the YAML header written above the Markdown body.
type frontmatter struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author,omitempty"`
	Date        string `yaml:"date,omitempty"`
	Source      string `yaml:"source,omitempty"`
	Description string `yaml:"description,omitempty"`
	Image       string `yaml:"image,omitempty"`
}

// Renderer renders an article as Markdown with a YAML frontmatter block.
type Renderer struct {
	conv mread.Converter
}

// NewRenderer creates a Renderer that converts bodies with conv.
func NewRenderer(conv mread.Converter) *Renderer {
	return &Renderer{conv: conv}
}

// Render returns the Markdown document for article. A plain-text body is
// written as is.
func (r *Renderer) Render(article *mread.Article) (string, error) {
	if article == nil {
		return "", mread.Errorf(mread.EINVALID, "article required")
	}

	body := strings.TrimSpace(article.Body)
	if strings.HasPrefix(body, "<") {
		md, err := r.conv.Convert(body, article.URL)
		if err != nil {
			return "", err
		}
		body = md
	}

	header, err := yaml.Marshal(frontmatter{
		Title:       article.Title,
		Author:      article.Author,
		Date:        article.PublishedAt,
		Source:      article.URL,
		Description: article.Description,
		Image:       article.Image,
	})
	if err != nil {
		return "", mread.Errorf(mread.EINTERNAL, "failed to encode frontmatter: %v", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	if article.Title != "" {
		b.WriteString("# " + article.Title + "\n\n")
	}
	b.WriteString(body)
	b.WriteString("\n")
	return b.String(), nil
}
