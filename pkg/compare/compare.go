// Package compare provides the string-equality policies used when a scan
// cursor matches literal tokens (is "BaNaNa" a suitable match for "banana"?).
//
// Every policy is a stateless, comparable value. None of them performs
// Unicode normalization.
package compare

import (
	"unicode"
	"unicode/utf8"
)

// Exact reports two strings equal if and only if their UTF-8 bytes are
// identical.
type Exact struct{}

// Equal implements the comparator contract.
func (Exact) Equal(a, b string) bool {
	return a == b
}

func (Exact) String() string { return "Exact" }

// ASCIICaseInsensitive folds the case of ASCII letters and compares every
// other byte exactly. It is a cheaper alternative to CaseInsensitive when the
// literals involved are ASCII.
type ASCIICaseInsensitive struct{}

// Equal implements the comparator contract.
func (ASCIICaseInsensitive) Equal(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func (ASCIICaseInsensitive) String() string { return "ASCIICaseInsensitive" }

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// CaseInsensitive compares strings code point by code point after mapping
// each one to lower case.
//
// Known limitation: code points whose lower case form is more than one code
// point are compared by their simple mapping only, and the comparison is not
// locale-aware. Grammars may rely on this exact behavior, so it is kept as is.
type CaseInsensitive struct{}

// Equal implements the comparator contract.
func (CaseInsensitive) Equal(a, b string) bool {
	if utf8.RuneCountInString(a) != utf8.RuneCountInString(b) {
		return false
	}

	// BUG: simple per-rune mapping; see the type documentation.
	for _, ca := range a {
		cb, n := utf8.DecodeRuneInString(b)
		b = b[n:]
		if unicode.ToLower(ca) != unicode.ToLower(cb) {
			return false
		}
	}
	return true
}

func (CaseInsensitive) String() string { return "CaseInsensitive" }
