package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonSlugChars matches runs of characters not allowed in a slug
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives a URL-safe slug from a title: accents are decomposed
// and stripped, the result is lowercased, runs of non-alphanumeric
// characters collapse to a single hyphen, and leading/trailing hyphens
// are trimmed.
func Slugify(title string) string {
	// Decompose unicode and drop combining marks so accented letters
	// keep their base form.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, title)

	result = strings.ToLower(result)
	result = nonSlugChars.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// UniqueSlug returns base if unused, otherwise the first of base-1,
// base-2, ... not present in taken.
func UniqueSlug(base string, taken map[string]struct{}) string {
	if _, exists := taken[base]; !exists {
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if _, exists := taken[candidate]; !exists {
			return candidate
		}
	}
}

// NextSlug returns the next suffixed candidate after a conflicting slug:
// "title" becomes "title-1", "title-3" becomes "title-4".
func NextSlug(base, conflicting string) string {
	if conflicting == base {
		return base + "-1"
	}
	suffix := strings.TrimPrefix(conflicting, base+"-")
	n := 0
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return conflicting + "-1"
		}
		n = n*10 + int(r-'0')
	}
	return fmt.Sprintf("%s-%d", base, n+1)
}
