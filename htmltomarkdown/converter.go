// Package htmltomarkdown renders articles as Markdown documents.
package htmltomarkdown

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/mread"
)

var _ mread.Converter = (*Converter)(nil)

// Converter converts article bodies to CommonMark with table support.
type Converter struct {
	md *converter.Converter
}

// NewConverter returns a Converter.
func NewConverter() *Converter {
	return &Converter{
		md: converter.NewConverter(converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		)),
	}
}

// Convert returns body as Markdown. Links and images with relative paths
// point at pageURL's origin; an unparseable pageURL leaves them relative.
func (c *Converter) Convert(body, pageURL string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", mread.Errorf(mread.EINVALID, "empty HTML input")
	}

	var md string
	var err error
	if origin := originOf(pageURL); origin != "" {
		md, err = c.md.ConvertString(body, converter.WithDomain(origin))
	} else {
		md, err = c.md.ConvertString(body)
	}
	if err != nil {
		return "", mread.Errorf(mread.EINTERNAL, "failed to convert article body: %v", err)
	}
	return strings.TrimSpace(md), nil
}

// originOf returns scheme://host for an absolute URL, or "".
func originOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
