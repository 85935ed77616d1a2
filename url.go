package mread

import (
	"net/url"
	"strings"
)

// ValidateURL returns an error unless rawURL is an http(s) URL on medium.com
// or one of its subdomains.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "unsupported URL scheme %q", u.Scheme)
	}
	host := strings.ToLower(u.Hostname())
	if host == "medium.com" || host == "www.medium.com" || strings.HasSuffix(host, ".medium.com") {
		return nil
	}
	return Errorf(EINVALID, "%s doesn't appear to be a Medium URL", rawURL)
}
