package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLen = 32

// SlugifyName folds a person's name to a lowercase ASCII slug suitable for
// staff codes and email local parts. Diacritics are stripped, everything
// outside [a-z0-9] is dropped.
func SlugifyName(s string) string {
	folder := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() >= maxSlugLen {
			break
		}
	}
	if b.Len() == 0 {
		return "user"
	}
	return b.String()
}
