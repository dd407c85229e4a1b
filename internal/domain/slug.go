package domain

import (
	"regexp"
	"strings"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from an event title: lowercase, runs of
// non-alphanumeric characters collapsed to a single dash, leading and
// trailing dashes trimmed. Titles differing only in punctuation produce the
// same slug; collisions surface as ErrDuplicateSlug on insert.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
