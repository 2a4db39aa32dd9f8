package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var turkishLower = cases.Lower(language.Turkish)

// Slugify normalizes a display name into a URL slug. Lowercasing is
// Turkish-aware (dotted/dotless i), Turkish letters map to their ASCII
// neighbours, and anything else collapses to hyphens.
func Slugify(name string) string {
	s := turkishLower.String(strings.TrimSpace(name))

	replacer := strings.NewReplacer(
		"ç", "c",
		"ğ", "g",
		"ı", "i",
		"ö", "o",
		"ş", "s",
		"ü", "u",
	)
	s = replacer.Replace(s)

	var b strings.Builder
	lastHyphen := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
