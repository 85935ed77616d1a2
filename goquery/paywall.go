package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/mread"
)

// paywallMarkers appear in the raw HTML of member-only and locked-preview pages.
var paywallMarkers = regexp.MustCompile(`(?i)member-only|member only|ismarkedpaywallonly|islockedpreviewonly|paywall|locked.*preview`)

// paywallWords appear in the visible text of short paywalled pages.
var paywallWords = regexp.MustCompile(`(?i)member.*only|paywall|locked`)

// Ensure PaywallDetector implements mread.PaywallDetector at compile time.
var _ mread.PaywallDetector = (*PaywallDetector)(nil)

// PaywallDetector decides whether fetched HTML is a member-only teaser or a
// truncated render that is worth refetching through another source.
type PaywallDetector struct {
	Thresholds Thresholds
}

// NewPaywallDetector creates a PaywallDetector with the given thresholds.
// Zero fields take their defaults.
func NewPaywallDetector(t Thresholds) *PaywallDetector {
	return &PaywallDetector{Thresholds: t.withDefaults()}
}

// IsTruncated reports whether html looks member-only or cut off.
func (d *PaywallDetector) IsTruncated(html string) bool {
	if paywallMarkers.MatchString(html) {
		return true
	}

	doc, err := parseDocument(html)
	if err != nil {
		return false
	}

	if container := doc.Find(PostBodySelector).First(); container.Length() > 0 {
		return d.looksCutOff(container.Text())
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return false
	}
	text := body.Text()
	return utf8.RuneCountInString(text) < d.Thresholds.PaywallPageMaxChars && paywallWords.MatchString(text)
}

// looksCutOff reports whether a short post body ends in an ellipsis or
// mid-sentence.
func (d *PaywallDetector) looksCutOff(text string) bool {
	if utf8.RuneCountInString(text) >= d.Thresholds.PaywallBodyMaxChars {
		return false
	}

	runes := []rune(strings.TrimRight(text, " \t\r\n"))
	if len(runes) == 0 {
		return false
	}

	tail := runes
	if len(tail) > d.Thresholds.EllipsisWindow {
		tail = tail[len(tail)-d.Thresholds.EllipsisWindow:]
	}
	if strings.Contains(string(tail), "...") {
		return true
	}

	return !strings.ContainsRune(".!?", runes[len(runes)-1])
}
