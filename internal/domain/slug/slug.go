// Package slug derives the lowercase alphanumeric tokens used as primary keys
// for companies and industries.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes accented characters and drops their combining marks,
// so "café" contributes "cafe" instead of losing the rune entirely.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make normalizes a free-text label into a URL-safe slug: diacritics folded,
// lowercased, everything outside [a-z0-9] removed. The result may be empty;
// callers are expected to reject empty slugs.
func Make(label string) string {
	folded, _, err := transform.String(foldMarks, label)
	if err != nil {
		folded = label
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
