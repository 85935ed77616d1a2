package goquery_test

import (
	"testing"

	upstream "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mread/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestIsUIElement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want bool
	}{
		{name: "sign in text", html: `<a id="x" href="/about">Sign In</a>`, want: true},
		{name: "clap text", html: `<span id="x">42 claps</span>`, want: true},
		{name: "reading time", html: `<span id="x">5 min read</span>`, want: true},
		{name: "member-only badge", html: `<div id="x">Member-only story</div>`, want: true},
		{name: "sign-in href", html: `<a id="x" href="https://medium.com/m/signin?redirect=x">Continue</a>`, want: true},
		{name: "bookmark href", html: `<a id="x" href="/bookmark/123">Save</a>`, want: true},
		{name: "href marker ignored on non-link", html: `<div id="x" data-href="/m/signin">Plain</div>`, want: false},
		{name: "article link", html: `<a id="x" href="https://go.dev/doc">the Go docs</a>`, want: false},
		{name: "paragraph", html: `<p id="x">An ordinary paragraph.</p>`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sel := selection(t, tt.html, "#x")

			assert.Equal(t, tt.want, goquery.IsUIElement(sel))
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	t.Run("removes scripts styles navigation and buttons", func(t *testing.T) {
		t.Parallel()

		root := selection(t, `<div id="root"><script>track()</script><style>p{}</style><nav>Home</nav><button>Follow</button><p>Body</p></div>`, "#root")

		goquery.Sanitize(root)

		html, err := upstream.OuterHtml(root)
		require.NoError(t, err)
		assert.Equal(t, `<div id="root"><p>Body</p></div>`, html)
	})

	t.Run("replaces UI links with their text", func(t *testing.T) {
		t.Parallel()

		root := selection(t, `<div id="root"><p>Please <a href="/m/signin">sign in</a> now and read <a href="https://go.dev">the docs</a>.</p></div>`, "#root")

		goquery.Sanitize(root)

		html, err := upstream.OuterHtml(root)
		require.NoError(t, err)
		assert.Equal(t, `<div id="root"><p>Please sign in now and read <a href="https://go.dev">the docs</a>.</p></div>`, html)
	})

	t.Run("removes empty chrome but keeps media wrappers", func(t *testing.T) {
		t.Parallel()

		root := selection(t, `<div id="root"><div class="icon-wrap"></div><span class="tooltip"> </span><div class="menu"><img src="a.png"/></div><div class="layout"></div><p>Text</p></div>`, "#root")

		goquery.Sanitize(root)

		html, err := upstream.OuterHtml(root)
		require.NoError(t, err)
		assert.Equal(t, `<div id="root"><div class="menu"><img src="a.png"/></div><div class="layout"></div><p>Text</p></div>`, html)
	})

	t.Run("unwraps nested html and body keeping children in order", func(t *testing.T) {
		t.Parallel()

		// The HTML parser drops nested html and body tags, so the tree is
		// built by hand.
		root := element(atom.Div,
			element(atom.P, textNode("first")),
			element(atom.Html,
				element(atom.Body,
					element(atom.P, textNode("second")),
					element(atom.P, textNode("third")),
				),
			),
			element(atom.P, textNode("fourth")),
		)
		sel := upstream.NewDocumentFromNode(root).Selection

		goquery.Sanitize(sel)
		once, err := upstream.OuterHtml(sel)
		require.NoError(t, err)
		assert.Equal(t, `<div><p>first</p><p>second</p><p>third</p><p>fourth</p></div>`, once)

		goquery.Sanitize(sel)
		twice, err := upstream.OuterHtml(sel)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		root := selection(t, `<div id="root"><section><h2>Heading</h2><p>Read <a href="/clap">clap here</a> and <a href="https://example.com">here</a>.</p><div class="menu-icon"><span class="icon"></span></div><figure><img src="x.png"/></figure><button>Share</button></section></div>`, "#root")

		goquery.Sanitize(root)
		once, err := upstream.OuterHtml(root)
		require.NoError(t, err)

		goquery.Sanitize(root)
		twice, err := upstream.OuterHtml(root)
		require.NoError(t, err)

		assert.Equal(t, once, twice)
	})
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
