package security

import (
	"strconv"
	"strings"
)

// Sanitize xavfli belgilarni (harf, raqam, '_', '.', bo'shliqdan boshqa)
// &#NNN; ko'rinishiga o'tkazadi. Saqlanadigan har bir matn shu yerdan o'tadi.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isSafe(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteString("&#")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteByte(';')
	}
	return b.String()
}

func isSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '.', r == ' ':
		return true
	}
	return false
}
