package http

import (
	"net/http"
	"strings"
)

// DefaultUserAgent identifies requests as a current desktop Chrome.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// Accept-Encoding is left to the transport so compressed bodies are
// decoded transparently.
var browserHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
	"Accept-Language":           "en-US,en;q=0.9",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-User":            "?1",
	"Sec-Ch-Ua":                 `"Google Chrome";v="131", "Chromium";v="131", "Not_A Brand";v="24"`,
	"Sec-Ch-Ua-Mobile":          "?0",
	"Sec-Ch-Ua-Platform":        `"macOS"`,
	"Cache-Control":             "max-age=0",
	"Dnt":                       "1",
}

// Referer returns the Referer and Sec-Fetch-Site values sent for target:
// Medium's homepage as a same-origin referrer for Medium URLs, a search
// engine otherwise.
func Referer(target string) (referer, site string) {
	if strings.Contains(target, "medium.com") {
		return "https://medium.com/", "same-origin"
	}
	return "https://www.google.com/", "cross-site"
}

func setHeaders(h http.Header, target, userAgent string) {
	for k, v := range browserHeaders {
		h.Set(k, v)
	}
	h.Set("User-Agent", userAgent)
	referer, site := Referer(target)
	h.Set("Referer", referer)
	h.Set("Sec-Fetch-Site", site)
}
