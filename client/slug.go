package client

import (
	"regexp"
	"strings"
)

// Slug derivation matches the service exactly so records synthesized by the
// fallback store carry the same slugs the service would assign: lower-case,
// strip characters that are neither word characters, whitespace nor hyphens,
// collapse whitespace runs to a single hyphen, truncate to 50 bytes.

const maxSlugLength = 50

var (
	slugStripPattern      = regexp.MustCompile(`[^\w\s-]`)
	slugWhitespacePattern = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL-safe slug from a title. It is idempotent.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripPattern.ReplaceAllString(s, "")
	s = slugWhitespacePattern.ReplaceAllString(s, "-")
	if len(s) > maxSlugLength {
		s = s[:maxSlugLength]
	}
	return s
}
