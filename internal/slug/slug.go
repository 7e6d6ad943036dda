// Package slug derives URL-safe identifiers from Spanish display names.
package slug

import "strings"

// Make converts a product or category name to a URL-safe slug: lowercase,
// accents stripped, whitespace collapsed to single hyphens. It is pure and
// deterministic; uniqueness is the storage layer's problem.
func Make(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevHyphen := false
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case r == ' ', r == '\t', r == '-', r == '_', r == '/':
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		default:
			// Map Spanish accented characters to ASCII equivalents.
			if ascii, ok := acentos[r]; ok {
				b.WriteRune(ascii)
				prevHyphen = false
			}
			// Anything else (emoji, punctuation) is dropped.
		}
	}
	return strings.TrimRight(b.String(), "-")
}

var acentos = map[rune]rune{
	'á': 'a',
	'é': 'e',
	'í': 'i',
	'ó': 'o',
	'ú': 'u',
	'ü': 'u',
	'ñ': 'n',
}
