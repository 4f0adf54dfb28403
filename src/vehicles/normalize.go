package vehicles

import (
	"strings"
	"unicode"
)

// NormalizeKey reduces a column header to its canonical key: lower case, with whitespace
// and the characters ( ) . - removed. "Engine Size (l)" becomes "enginesizel".
func NormalizeKey(header string) string {
	var b strings.Builder
	b.Grow(len(header))
	for _, r := range strings.ToLower(header) {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '(', ')', '.', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
