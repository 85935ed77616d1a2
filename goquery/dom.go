// Package goquery implements article extraction on top of goquery: JSON-LD
// and meta-tag extraction, the content-body strategies, the sanitizer and
// the paywall detector.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mread"
	"golang.org/x/net/html"
)

// PostBodySelector matches the container Medium marks as holding the
// complete, ordered article content.
const PostBodySelector = `[data-testid="postBody"]`

// Thresholds are the length guards used to reject teaser or truncated
// renders. All lengths are counted in characters (runes).
type Thresholds struct {
	// BodyMinChars is the text length markup must exceed to be accepted.
	BodyMinChars int

	// StructuredBodyMinChars is the length a JSON-LD articleBody must exceed.
	StructuredBodyMinChars int

	// PaywallBodyMaxChars is the post body length below which a body that
	// looks cut off is classified as truncated.
	PaywallBodyMaxChars int

	// PaywallPageMaxChars is the page text length below which paywall words
	// classify a page without a post body as truncated.
	PaywallPageMaxChars int

	// EllipsisWindow is how many trailing characters are searched for "...".
	EllipsisWindow int
}

// DefaultThresholds returns the thresholds tuned for Medium's markup.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BodyMinChars:           500,
		StructuredBodyMinChars: 200,
		PaywallBodyMaxChars:    2000,
		PaywallPageMaxChars:    3000,
		EllipsisWindow:         100,
	}
}

// withDefaults fills zero fields from DefaultThresholds.
func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	if t.BodyMinChars <= 0 {
		t.BodyMinChars = d.BodyMinChars
	}
	if t.StructuredBodyMinChars <= 0 {
		t.StructuredBodyMinChars = d.StructuredBodyMinChars
	}
	if t.PaywallBodyMaxChars <= 0 {
		t.PaywallBodyMaxChars = d.PaywallBodyMaxChars
	}
	if t.PaywallPageMaxChars <= 0 {
		t.PaywallPageMaxChars = d.PaywallPageMaxChars
	}
	if t.EllipsisWindow <= 0 {
		t.EllipsisWindow = d.EllipsisWindow
	}
	return t
}

// parseDocument parses raw HTML into a queryable document.
func parseDocument(rawHTML string) (*goquery.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mread.Errorf(mread.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, mread.Errorf(mread.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// cloneSelection deep-copies the first node of sel into a detached tree.
// Changes to the copy never reach the original document.
func cloneSelection(sel *goquery.Selection) *goquery.Selection {
	return goquery.NewDocumentFromNode(cloneNode(sel.Get(0))).Selection
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}

// textLen returns the number of characters of visible text in sel.
func textLen(sel *goquery.Selection) int {
	return utf8.RuneCountInString(sel.Text())
}

// removeNode detaches n. Already detached nodes are left alone.
func removeNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// unwrapNode replaces n with its children.
func unwrapNode(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for child := n.FirstChild; child != nil; child = n.FirstChild {
		n.RemoveChild(child)
		parent.InsertBefore(child, n)
	}
	parent.RemoveChild(n)
}

// replaceWithText replaces n with a text node holding text.
func replaceWithText(n *html.Node, text string) {
	if n.Parent == nil {
		return
	}
	n.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, n)
	n.Parent.RemoveChild(n)
}
