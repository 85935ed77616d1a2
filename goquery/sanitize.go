package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// uiPhrases mark text belonging to Medium's reader controls.
var uiPhrases = []string{
	"sign in",
	"sign up",
	"clap",
	"bookmark",
	"share",
	"follow",
	"member-only",
	"responses",
	"min read",
}

// uiHrefMarkers mark links to sign-in, bookmark and clap endpoints.
var uiHrefMarkers = []string{"/m/signin", "bookmark", "clap"}

// chromeClasses mark empty decoration elements (icons, menus, tooltips).
var chromeClasses = []string{"button", "icon", "tooltip", "menu", "nav"}

// IsUIElement reports whether sel holds reader UI rather than article
// content: its text mentions a control, or it is a link to a control.
func IsUIElement(sel *goquery.Selection) bool {
	text := strings.ToLower(strings.TrimSpace(sel.Text()))
	for _, phrase := range uiPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}

	if goquery.NodeName(sel) == "a" {
		href := strings.ToLower(sel.AttrOr("href", ""))
		for _, marker := range uiHrefMarkers {
			if strings.Contains(href, marker) {
				return true
			}
		}
	}

	return false
}

// Sanitize strips reader chrome from a copied content subtree in place.
// It must only be given a copy: the changes are destructive. Running it
// again on its own output changes nothing.
func Sanitize(root *goquery.Selection) {
	root.Find("script, style, nav, button").Remove()

	// UI links keep their text so sentences stay intact.
	root.Find("a").Each(func(_ int, a *goquery.Selection) {
		if IsUIElement(a) {
			replaceWithText(a.Get(0), a.Text())
		}
	})

	root.Find("div, span").Each(func(_ int, s *goquery.Selection) {
		if isChrome(s) {
			removeNode(s.Get(0))
		}
	})

	root.Find("html, body").Each(func(_ int, s *goquery.Selection) {
		unwrapNode(s.Get(0))
	})
}

// isChrome reports whether sel is an empty element styled as UI chrome.
func isChrome(sel *goquery.Selection) bool {
	if strings.TrimSpace(sel.Text()) != "" {
		return false
	}
	if sel.Find("img, figure, pre, code").Length() > 0 {
		return false
	}
	class := strings.ToLower(sel.AttrOr("class", ""))
	if class == "" {
		return false
	}
	for _, name := range chromeClasses {
		if strings.Contains(class, name) {
			return true
		}
	}
	return false
}
