package htmltemplate_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/mread"
	"github.com/fwojciec/mread/htmltemplate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Renderer implements mread.Renderer at compile time.
var _ mread.Renderer = (*htmltemplate.Renderer)(nil)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders all fields", func(t *testing.T) {
		t.Parallel()

		article := &mread.Article{
			URL:         "https://medium.com/@jane/test",
			Title:       "Test",
			Author:      "Jane Doe",
			PublishedAt: "2023-05-01T00:00:00Z",
			Description: "A short blurb",
			Image:       "https://miro.medium.com/cover.png",
			Body:        `<div data-testid="postBody"><p>Hello world.</p></div>`,
		}

		doc, err := htmltemplate.NewRenderer().Render(article)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
		assert.Contains(t, doc, "<title>Test</title>")
		assert.Contains(t, doc, `<h1 class="article-title">Test</h1>`)
		assert.Contains(t, doc, `<span class="article-author">By Jane Doe</span>`)
		assert.Contains(t, doc, `<div class="article-date">May 01, 2023</div>`)
		assert.Contains(t, doc, `<img src="https://miro.medium.com/cover.png" alt="Test" class="article-image">`)
		assert.Contains(t, doc, `<div class="article-description">A short blurb</div>`)
		assert.Contains(t, doc, `<div data-testid="postBody"><p>Hello world.</p></div>`)
	})

	t.Run("omits absent optional fields", func(t *testing.T) {
		t.Parallel()

		doc, err := htmltemplate.NewRenderer().Render(&mread.Article{Title: "Bare", Body: "<p>Body</p>"})

		require.NoError(t, err)
		assert.NotContains(t, doc, `class="article-author"`)
		assert.NotContains(t, doc, `class="article-date"`)
		assert.NotContains(t, doc, `class="article-image"`)
		assert.NotContains(t, doc, `class="article-description"`)
	})

	t.Run("escapes text fields", func(t *testing.T) {
		t.Parallel()

		doc, err := htmltemplate.NewRenderer().Render(&mread.Article{
			Title:  "<script>alert(1)</script>",
			Author: "Tom & Jerry",
			Body:   "<p>Body</p>",
		})

		require.NoError(t, err)
		assert.NotContains(t, doc, "<script>alert(1)</script>")
		assert.Contains(t, doc, "&lt;script&gt;alert(1)&lt;/script&gt;")
		assert.Contains(t, doc, "By Tom &amp; Jerry")
	})

	t.Run("uses fallback title", func(t *testing.T) {
		t.Parallel()

		doc, err := htmltemplate.NewRenderer().Render(&mread.Article{Body: "<p>Body</p>"})

		require.NoError(t, err)
		assert.Contains(t, doc, "<title>Article</title>")
	})

	t.Run("passes unparseable date through", func(t *testing.T) {
		t.Parallel()

		doc, err := htmltemplate.NewRenderer().Render(&mread.Article{Title: "T", PublishedAt: "sometime last spring", Body: "<p>x</p>"})

		require.NoError(t, err)
		assert.Contains(t, doc, `<div class="article-date">sometime last spring</div>`)
	})

	t.Run("rejects nil article", func(t *testing.T) {
		t.Parallel()

		_, err := htmltemplate.NewRenderer().Render(nil)

		assert.Equal(t, mread.EINVALID, mread.ErrorCode(err))
	})
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "UTC suffix", in: "2023-05-01T00:00:00Z", want: "May 01, 2023"},
		{name: "offset", in: "2021-12-24T18:30:00+02:00", want: "December 24, 2021"},
		{name: "fractional seconds", in: "2020-02-03T04:05:06.789Z", want: "February 03, 2020"},
		{name: "date only", in: "2019-07-04", want: "July 04, 2019"},
		{name: "unparseable", in: "not a date", want: "not a date"},
		{name: "unix timestamp", in: "1700000000", want: "1700000000"},
		{name: "bare year", in: "2023", want: "2023"},
		{name: "day month year", in: "1 May 2023", want: "1 May 2023"},
		{name: "US notation", in: "05/01/2023", want: "05/01/2023"},
		{name: "invalid ISO day", in: "2023-13-45", want: "2023-13-45"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, htmltemplate.FormatDate(tt.in))
		})
	}
}
