package validate

import (
	"strings"
)

const digits = "0123456789"

// separators commonly typed inside card and account numbers.
const separators = " \t-."

// IsAlphabet returns true if all characters in s are in allowed set.
func IsAlphabet(s, allowed string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(allowed, rune(s[i])) {
			return false
		}
	}
	return true
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	return IsAlphabet(s, digits)
}

// StripSeparators removes spaces, tabs, dashes and dots, so
// "4539 1488-0343.6467" becomes "4539148803436467". Other characters are
// kept so the engine can still reject them.
func StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(separators, r) {
			return -1
		}
		return r
	}, s)
}

// Normalize trims surrounding whitespace and, when strip is set, removes
// separators as well.
func Normalize(s string, strip bool) string {
	s = strings.TrimSpace(s)
	if strip {
		s = StripSeparators(s)
	}
	return s
}
