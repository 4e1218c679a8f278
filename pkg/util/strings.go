package util

import (
	"unicode"
)

// IsNumeric reports whether s is non-empty and contains only digits.
func IsNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// Mask truncates a secret for display, keeping a short prefix so the value
// can be recognized without being usable.
func Mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 10 {
		return "..."
	}
	return s[:10] + "..."
}
