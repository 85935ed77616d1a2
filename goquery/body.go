package goquery

import (
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mread"
)

// BodyExtractor locates the article body using, in order: the post-body
// container, the JSON-LD articleBody, then any <article> element.
// It never modifies the document it reads.
type BodyExtractor struct {
	Thresholds Thresholds
}

// NewBodyExtractor creates a BodyExtractor with the given thresholds.
// Zero fields take their defaults.
func NewBodyExtractor(t Thresholds) *BodyExtractor {
	return &BodyExtractor{Thresholds: t.withDefaults()}
}

// ExtractBody parses rawHTML and returns the article body.
// Returns EEXTRACT when no strategy yields qualifying content.
func (e *BodyExtractor) ExtractBody(rawHTML string) (string, error) {
	doc, err := parseDocument(rawHTML)
	if err != nil {
		return "", err
	}
	if body, ok := e.Extract(doc, mread.FindArticle(structuredData(doc))); ok {
		return body, nil
	}
	return "", mread.ErrNoArticleBody
}

// Extract runs the strategies against doc. obj is the page's JSON-LD
// article object and may be nil.
func (e *BodyExtractor) Extract(doc *goquery.Document, obj *mread.StructuredObject) (string, bool) {
	if body := e.FromPostBody(doc); body != "" {
		return body, true
	}
	if body := e.FromStructuredData(obj); body != "" {
		return body, true
	}
	if body := e.FromArticleTag(doc); body != "" {
		return body, true
	}
	return "", false
}

// FromPostBody returns the sanitized post-body container, preferring an
// inner <article>. When the sanitized copy is too short it falls back to
// the container's unsanitized markup, if that is long enough.
func (e *BodyExtractor) FromPostBody(doc *goquery.Document) string {
	container := doc.Find(PostBodySelector).First()
	if container.Length() == 0 {
		return ""
	}

	source := container
	if inner := container.Find("article").First(); inner.Length() > 0 {
		source = inner
	}

	clean := cloneSelection(source)
	Sanitize(clean)
	if textLen(clean) > e.Thresholds.BodyMinChars {
		if markup, err := goquery.OuterHtml(clean); err == nil {
			return markup
		}
	}

	if textLen(container) > e.Thresholds.BodyMinChars {
		if markup, err := goquery.OuterHtml(container); err == nil {
			return markup
		}
	}
	return ""
}

// FromStructuredData returns the JSON-LD articleBody verbatim when it is
// long enough. It is plain text and is not sanitized.
func (e *BodyExtractor) FromStructuredData(obj *mread.StructuredObject) string {
	if obj == nil {
		return ""
	}
	if utf8.RuneCountInString(obj.ArticleBody) > e.Thresholds.StructuredBodyMinChars {
		return obj.ArticleBody
	}
	return ""
}

// FromArticleTag returns a sanitized copy of the first <article> element
// when its text is long enough.
func (e *BodyExtractor) FromArticleTag(doc *goquery.Document) string {
	article := doc.Find("article").First()
	if article.Length() == 0 || textLen(article) <= e.Thresholds.BodyMinChars {
		return ""
	}

	clean := cloneSelection(article)
	Sanitize(clean)
	markup, err := goquery.OuterHtml(clean)
	if err != nil {
		return ""
	}
	return markup
}
