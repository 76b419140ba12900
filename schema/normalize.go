package schema

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ============================================================================
// HEADER NORMALIZATION
// ============================================================================
// Both sides of every similarity comparison go through Normalize first, so
// "Client Id", "client_id" and "CLIENT-ID" all collapse to "clientid".
// ============================================================================

// maxHeaderLen caps normalization input. Header names are short in
// practice; the cap keeps the quadratic similarity cost bounded even for
// hostile input.
const maxHeaderLen = 256

// Normalize lowercases a header and strips separators and diacritics.
func Normalize(header string) string {
	s := strings.TrimSpace(header)
	if len(s) > maxHeaderLen {
		s = s[:maxHeaderLen]
	}
	s = strings.ToLower(s)
	s = stripDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripDiacritics removes accent marks via NFD decomposition: characters
// like 'é' split into 'e' plus a combining mark, and the mark is dropped.
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
