package goquery_test

import (
	"strings"
	"testing"

	upstream "github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// text returns n characters of filler prose with no reader-control words.
func text(n int) string {
	const filler = "Lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor "
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(filler)
	}
	return b.String()[:n]
}

// selection parses html and returns the elements matching selector.
func selection(t *testing.T, html, selector string) *upstream.Selection {
	t.Helper()

	doc, err := upstream.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	sel := doc.Find(selector)
	require.Equal(t, 1, sel.Length(), "selector %q", selector)
	return sel
}

// document parses html into a goquery document.
func document(t *testing.T, html string) *upstream.Document {
	t.Helper()

	doc, err := upstream.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}
