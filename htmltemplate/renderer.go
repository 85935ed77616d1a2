// Package htmltemplate renders articles as standalone HTML documents.
package htmltemplate

import (
	_ "embed"
	"html/template"
	"regexp"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/mread"
)

//go:embed article.html
var articleHTML string

var articleTemplate = template.Must(template.New("article").Parse(articleHTML))

// DateLayout is the display format for publication dates.
const DateLayout = "January 02, 2006"

// fallbackTitle is shown when an article reaches the renderer untitled.
const fallbackTitle = "Article"

// Ensure Renderer implements mread.Renderer at compile time.
var _ mread.Renderer = (*Renderer)(nil)

// Renderer fills a fixed, self-contained HTML template with article fields.
// Text fields are escaped; the body is cleaned and inserted as markup.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

type page struct {
	Title       string
	Author      string
	Date        string
	Image       string
	Description string
	Body        template.HTML
}

// Render returns the complete HTML document for article.
func (r *Renderer) Render(article *mread.Article) (string, error) {
	if article == nil {
		return "", mread.Errorf(mread.EINVALID, "article required")
	}

	body, err := CleanBody(article.Body)
	if err != nil {
		return "", err
	}

	p := page{
		Title:       article.Title,
		Author:      article.Author,
		Date:        FormatDate(article.PublishedAt),
		Image:       article.Image,
		Description: article.Description,
		Body:        template.HTML(body),
	}
	if p.Title == "" {
		p.Title = fallbackTitle
	}

	var b strings.Builder
	if err := articleTemplate.Execute(&b, p); err != nil {
		return "", mread.Errorf(mread.EINTERNAL, "failed to render article: %v", err)
	}
	return b.String(), nil
}

// isoDate matches strings that start with an ISO-8601 calendar date.
var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// FormatDate formats an ISO-8601 date as "Month DD, YYYY". Any other input,
// including dates in other notations, is returned unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if !isoDate.MatchString(s) {
		return s
	}
	t, err := dateparse.ParseStrict(s)
	if err != nil {
		return s
	}
	return t.Format(DateLayout)
}
