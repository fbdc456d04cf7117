package auditlog

import (
	"strings"
	"unicode"
)

// maxArgLen bounds a single stored argument. Manual color input is free text
// and can be arbitrarily long.
const maxArgLen = 64

// SanitizeArgs strips control characters and truncates long arguments for
// audit storage.
func SanitizeArgs(args []string) []string {
	sanitized := make([]string, 0, len(args))
	for _, arg := range args {
		clean := strings.Map(func(r rune) rune {
			if unicode.IsControl(r) {
				return -1
			}
			return r
		}, arg)

		if runes := []rune(clean); len(runes) > maxArgLen {
			clean = string(runes[:maxArgLen]) + "…"
		}
		sanitized = append(sanitized, clean)
	}
	return sanitized
}
