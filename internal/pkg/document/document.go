// Package document normalizes Brazilian identification documents
// (CPF, CNPJ, passport and foreign-registry numbers) for comparison.
package document

import "strings"

// Normalize strips every character that is not an ASCII letter or digit and
// upper-cases the remainder, so "123.456.789-00" and "12345678900" compare
// equal. Accented characters are removed, not transliterated.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		}
	}
	return b.String()
}
