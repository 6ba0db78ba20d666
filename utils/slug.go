package utils

import (
	"strings"
	"unicode"
)

// Slugify lowercases a name and reduces it to hyphen-separated
// alphanumeric runs, suitable for URL routing.
func Slugify(name string) string {
	var b strings.Builder
	prevHyphen := true

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
