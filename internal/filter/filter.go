// Package filter classifies website URLs and extracted email strings. Both
// filters are pure string checks; no network access happens here.
package filter

import "strings"

// Businesses whose only web presence is a directory or aggregator page are a
// weak signal for custom software work, so their URLs are rejected before any
// email fetch is spent on them.
var defaultWebsiteBlacklist = []string{
	"localsearch.com",
	"yellowpages.com",
	"yp.com",
	"superpages.com",
	"whitepages.com",
	"manta.com",
	"yelp.com",
}

var defaultEmailBlacklist = []string{
	"example.com", "domain.com", "email.com", "yoursite", "yourdomain",
	"sentry.io", "schema.org", "json", "wixpress", "wix.com",
	"googleapis", "google.com", "facebook", "twitter", "instagram",
	".png", ".jpg", ".gif", ".svg", ".css", ".js",
	"yellowpages", "yp.com", "placeholder", "test.com",
	"wordpress", "squarespace", "shopify", "godaddy", "wufoo",
}

// Website rejects directory/aggregator URLs and sentinel values.
type Website struct {
	blacklist []string
}

// NewWebsite builds a filter with the default blacklist plus any per-niche
// extras.
func NewWebsite(extra ...string) *Website {
	return &Website{blacklist: append(append([]string{}, defaultWebsiteBlacklist...), extra...)}
}

// IsReal reports whether url looks like an independently-owned business site.
// Empty, whitespace-only, and "N/A" values fail closed.
func (w *Website) IsReal(url string) bool {
	url = strings.TrimSpace(url)
	if url == "" || url == "N/A" {
		return false
	}

	lower := strings.ToLower(url)
	for _, pattern := range w.blacklist {
		if strings.Contains(lower, pattern) {
			return false
		}
	}
	return true
}

// Email rejects platform, placeholder, and static-asset noise that the regex
// extraction pass tends to pick up.
type Email struct {
	blacklist []string
}

// NewEmail builds a validator with the default blacklist plus any per-niche
// extras.
func NewEmail(extra ...string) *Email {
	return &Email{blacklist: append(append([]string{}, defaultEmailBlacklist...), extra...)}
}

// IsReal reports whether s looks like a genuine contact address.
func (e *Email) IsReal(s string) bool {
	if s == "" || !strings.Contains(s, "@") {
		return false
	}

	lower := strings.ToLower(s)
	for _, pattern := range e.blacklist {
		if strings.Contains(lower, pattern) {
			return false
		}
	}
	return true
}
