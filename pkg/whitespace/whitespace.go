// Package whitespace provides the whitespace policies used by scan cursors.
//
// A policy decides two things about the text at the cursor: how many leading
// bytes of whitespace may be skipped silently (StripLen), and whether the
// whitespace that remains forms an explicit token (TokenLen). A policy that
// wants newlines surfaced as tokens simply does not strip them.
//
// Explicit tokens are returned as strings so a policy can either hand back a
// slice of the input or a canonical spelling such as "\n" or " ".
package whitespace

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-scan/internal/runes"
)

// Canonical spellings of explicit whitespace tokens.
const (
	Newline = "\n"
	Space   = " "
)

func isNewline(r rune) bool {
	return r == '\r' || r == '\n'
}

func isInlineSpace(r rune) bool {
	return unicode.IsSpace(r) && !isNewline(r)
}

// newlineLen returns the length of the line terminator at the start of s:
// 2 for "\r\n", 1 for a lone "\r" or "\n", and 0 otherwise.
func newlineLen(s string) int {
	switch {
	case strings.HasPrefix(s, "\r\n"):
		return 2
	case strings.HasPrefix(s, "\r"), strings.HasPrefix(s, "\n"):
		return 1
	default:
		return 0
	}
}

// Ignore skips every White_Space code point and never produces a token.
type Ignore struct{}

// StripLen implements the whitespace contract.
func (Ignore) StripLen(s string) int {
	n, _ := runes.LenWhile(s, unicode.IsSpace)
	return n
}

// TokenLen implements the whitespace contract.
func (Ignore) TokenLen(string) (int, string, bool) {
	return 0, "", false
}

func (Ignore) String() string { return "Ignore" }

// ExplicitNewline skips whitespace other than line terminators. A line
// terminator ("\r\n", "\r" or "\n") becomes an explicit "\n" token.
type ExplicitNewline struct{}

// StripLen implements the whitespace contract.
func (ExplicitNewline) StripLen(s string) int {
	n, _ := runes.LenWhile(s, isInlineSpace)
	return n
}

// TokenLen implements the whitespace contract.
func (ExplicitNewline) TokenLen(s string) (int, string, bool) {
	if n := newlineLen(s); n > 0 {
		return n, Newline, true
	}
	return 0, "", false
}

func (ExplicitNewline) String() string { return "ExplicitNewline" }

// Explicit skips nothing. A single line terminator becomes a "\n" token and a
// run of any other whitespace collapses into one " " token.
type Explicit struct{}

// StripLen implements the whitespace contract.
func (Explicit) StripLen(string) int {
	return 0
}

// TokenLen implements the whitespace contract.
func (Explicit) TokenLen(s string) (int, string, bool) {
	if n := newlineLen(s); n > 0 {
		return n, Newline, true
	}
	if n, ok := runes.LenWhile(s, isInlineSpace); ok {
		return n, Space, true
	}
	return 0, "", false
}

func (Explicit) String() string { return "Explicit" }

// ExplicitAny skips nothing and collapses every whitespace run, newlines
// included, into one " " token.
type ExplicitAny struct{}

// StripLen implements the whitespace contract.
func (ExplicitAny) StripLen(string) int {
	return 0
}

// TokenLen implements the whitespace contract.
func (ExplicitAny) TokenLen(s string) (int, string, bool) {
	if n, ok := runes.LenWhile(s, unicode.IsSpace); ok {
		return n, Space, true
	}
	return 0, "", false
}

func (ExplicitAny) String() string { return "ExplicitAny" }

// Exact skips nothing and turns every whitespace code point into its own
// verbatim token, so tab and space differ, as do "\r\n" and "\n". A "\r\n"
// pair is kept together as one token.
type Exact struct{}

// StripLen implements the whitespace contract.
func (Exact) StripLen(string) int {
	return 0
}

// TokenLen implements the whitespace contract.
func (Exact) TokenLen(s string) (int, string, bool) {
	if strings.HasPrefix(s, "\r\n") {
		return 2, s[:2], true
	}
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || !unicode.IsSpace(r) {
		return 0, "", false
	}
	return n, s[:n], true
}

func (Exact) String() string { return "Exact" }
