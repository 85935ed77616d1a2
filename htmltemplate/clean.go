package htmltemplate

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mread"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CleanBody prepares an article body for insertion into the document.
//
// Plain text is split on blank lines into escaped paragraphs. Markup is
// parsed as a fragment: scripts and styles are removed, nested html and
// body wrappers are unwrapped, images get a lazy-loading hint and images
// without a source are dropped. A fragment that reduces to a single
// top-level div is returned as that div alone.
func CleanBody(body string) (string, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "", nil
	}
	if !strings.HasPrefix(trimmed, "<") {
		return paragraphs(body), nil
	}

	bodyCtx := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(body), bodyCtx)
	if err != nil {
		return "", mread.Errorf(mread.EINVALID, "failed to parse article body: %v", err)
	}

	root := &xhtml.Node{Type: xhtml.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return CleanNode(root)
}

// CleanNode cleans the children of root in place and renders them. Nested
// html and body elements are unwrapped with their children kept in order.
// A lone top-level div is rendered with its own tag.
func CleanNode(root *xhtml.Node) (string, error) {
	sel := goquery.NewDocumentFromNode(root).Selection

	sel.Find("html, body").Each(func(_ int, s *goquery.Selection) {
		unwrap(s.Get(0))
	})
	sel.Find("script, style").Remove()
	sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		if strings.TrimSpace(img.AttrOr("src", "")) == "" {
			img.Remove()
			return
		}
		img.SetAttr("loading", "lazy")
	})

	if only := singleElement(root); only != nil && only.DataAtom == atom.Div {
		return render(only)
	}
	return sel.Html()
}

// paragraphs wraps each blank-line separated block of text in <p>.
func paragraphs(text string) string {
	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		if block = strings.TrimSpace(block); block != "" {
			out = append(out, "<p>"+html.EscapeString(block)+"</p>")
		}
	}
	return strings.Join(out, "\n")
}

// singleElement returns the only element child of n, ignoring text and
// comments, or nil when there are none or several.
func singleElement(n *xhtml.Node) *xhtml.Node {
	var only *xhtml.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xhtml.ElementNode {
			continue
		}
		if only != nil {
			return nil
		}
		only = c
	}
	return only
}

func render(n *xhtml.Node) (string, error) {
	var b strings.Builder
	if err := xhtml.Render(&b, n); err != nil {
		return "", mread.Errorf(mread.EINTERNAL, "failed to render article body: %v", err)
	}
	return b.String(), nil
}

func unwrap(n *xhtml.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}
