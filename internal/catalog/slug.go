package catalog

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	invalidRe    = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify lower-cases a name, turns internal whitespace runs into hyphens,
// and strips every remaining character outside [a-z0-9-]. Idempotent:
// Slugify(Slugify(x)) == Slugify(x).
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRe.ReplaceAllString(s, "-")
	return invalidRe.ReplaceAllString(s, "")
}
