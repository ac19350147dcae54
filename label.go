package idna

import (
	"strings"
	"unicode/utf8"
)

// Label classification per RFC 5890. The three categories partition every
// syntactically non-empty label exactly once: an A-label is ASCII with the
// ACE prefix, a U-label contains an extended code point, and an
// NR-LDH-label is ASCII without the prefix.

// IsALabel reports whether label is an ASCII label whose case-insensitive
// form starts with the ACE prefix.
func IsALabel(label string) bool {
	return isASCII(label) && hasACEPrefix(label)
}

// IsULabel reports whether label contains at least one non-ASCII code
// point.
func IsULabel(label string) bool {
	return !isASCII(label)
}

// IsNRLDHLabel reports whether label is all-ASCII without the ACE prefix.
func IsNRLDHLabel(label string) bool {
	return isASCII(label) && !hasACEPrefix(label)
}

func hasACEPrefix(label string) bool {
	return len(label) >= len(ACEPrefix) && strings.EqualFold(label[:len(ACEPrefix)], ACEPrefix)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
