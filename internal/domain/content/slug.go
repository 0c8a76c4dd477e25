package content

import (
	"regexp"
	"strings"
)

// Slug derivation follows the rule used by every deployed backend variant:
// lower-case the title, strip characters that are neither word characters,
// whitespace nor hyphens, collapse each whitespace run to a single hyphen,
// and truncate to 50 bytes. Hyphens survive the strip step, which makes the
// derivation idempotent: Slugify(Slugify(t)) == Slugify(t).
//
// Uniqueness is NOT enforced here or anywhere else; two titles that slugify
// to the same value produce ambiguous slug lookups. Callers that care must
// check for collisions themselves.

const maxSlugLength = 50

var (
	slugStripPattern      = regexp.MustCompile(`[^\w\s-]`)
	slugWhitespacePattern = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL-safe slug from a title
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripPattern.ReplaceAllString(s, "")
	s = slugWhitespacePattern.ReplaceAllString(s, "-")
	if len(s) > maxSlugLength {
		s = s[:maxSlugLength]
	}
	return s
}
