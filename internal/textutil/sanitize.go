package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeName makes a file name safe to print on a terminal. Control
// characters become '?', line breaks and tabs become spaces, and invisible
// formatting runes (bidi overrides, zero-width joiners) are spelled out as
// <U+XXXX> so a name cannot disguise itself.
func SanitizeName(name string) string {
	if !needsSanitizing(name) {
		return name
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case unicode.Is(unicode.Cf, r):
			fmt.Fprintf(&b, "<U+%04X>", r)
		case unicode.IsControl(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(name string) bool {
	for _, r := range name {
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return true
		}
	}
	return false
}
