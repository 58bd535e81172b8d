// Package slug turns press kit titles into URL-safe identifiers and builds
// the numbered variants used to keep them unique.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const separator = '-'

// Normalize lowercases title, folds accented letters to their base form and
// collapses every run of characters outside [a-z0-9] into a single '-'.
// Leading and trailing separators are trimmed, so a title with no letters or
// digits yields "".
func Normalize(title string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	b.Grow(len(folded))
	pending := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteRune(separator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// WithCount picks the slug for base given how many existing records already
// use base or a numbered variant of it: base itself when none do, otherwise
// base-(count+1).
func WithCount(base string, count int) string {
	if count <= 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, count+1)
}

// Pattern is the anchored regular expression matching base and its numbered
// variants (base-2, base-17, ...). The syntax is valid for both Go's regexp
// and Postgres' "~" operator.
func Pattern(base string) string {
	return "^" + regexp.QuoteMeta(base) + "(-[0-9]+)?$"
}

// Matches reports whether candidate is base or a numbered variant of base.
func Matches(base, candidate string) bool {
	if candidate == base {
		return true
	}
	rest, ok := strings.CutPrefix(candidate, base+string(separator))
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// URL joins the public base URL and slug into the shareable press kit link.
func URL(publicBaseURL, slug string) string {
	return strings.TrimRight(publicBaseURL, "/") + "/kit/" + slug
}
