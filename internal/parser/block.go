package parser

import "strings"

// IsBlocked classifies fetched markup as bot-blocked. The automation layer
// does not expose status codes, so only content heuristics apply: an explicit
// block phrase, or a CDN challenge marker together with a request trace id.
func IsBlocked(html string) bool {
	lower := strings.ToLower(html)

	if strings.Contains(lower, "you have been blocked") {
		return true
	}

	return strings.Contains(lower, "cloudflare") && strings.Contains(lower, "ray id")
}
